package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupService(t *testing.T) {
	service, err := LookupService("corte")
	require.NoError(t, err)
	assert.Equal(t, "Corte Tradicional", service.Name)
	assert.Equal(t, int64(4000), service.PriceCents)
	assert.Equal(t, 30, service.DurationMinutes)

	_, err = LookupService("manicure")
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestCalculateTotals(t *testing.T) {
	duration, err := CalculateTotalDuration([]string{"corte", "barba"})
	require.NoError(t, err)
	assert.Equal(t, 50, duration)

	price, err := CalculateTotalPrice([]string{"corte", "barba"})
	require.NoError(t, err)
	assert.Equal(t, int64(6500), price)

	// Одна и та же услуга может повторяться
	duration, err = CalculateTotalDuration([]string{"corte", "corte"})
	require.NoError(t, err)
	assert.Equal(t, 60, duration)

	_, err = CalculateTotalDuration([]string{"corte", "manicure"})
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestBooking_OccupiesInterval(t *testing.T) {
	scheduled := scheduledBooking("10:00", 30)
	assert.True(t, scheduled.OccupiesInterval())

	walkIn := walkInBooking()
	assert.False(t, walkIn.OccupiesInterval())

	zeroDuration := scheduledBooking("10:00", 0)
	assert.False(t, zeroDuration.OccupiesInterval())
}
