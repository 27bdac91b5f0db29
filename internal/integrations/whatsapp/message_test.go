package whatsapp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/masterbarber/MB-BookingService/internal/domain"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R$ 40,00", FormatPrice(4000))
	assert.Equal(t, "R$ 65,00", FormatPrice(6500))
	assert.Equal(t, "R$ 0,50", FormatPrice(50))
	assert.Equal(t, "R$ 123,45", FormatPrice(12345))
}

func TestBuildBookingMessage(t *testing.T) {
	booking := &domain.Booking{
		Name:            "João Silva",
		Phone:           "(85) 99999-0001",
		BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		BookingType:     domain.TypeScheduled,
		TotalPriceCents: 6500,
	}

	msg := BuildBookingMessage(booking, []string{"Corte", "Barba"})

	assert.Contains(t, msg, "*Novo Agendamento - Master Barber*")
	assert.Contains(t, msg, "*Nome:* João Silva")
	assert.Contains(t, msg, "*Serviços:* Corte, Barba")
	assert.Contains(t, msg, "*Data:* 15/09/2026")
	assert.Contains(t, msg, "*Horário:* 10:00")
	assert.Contains(t, msg, "*Valor Total:* R$ 65,00")
}

func TestBuildBookingMessage_WalkIn(t *testing.T) {
	booking := &domain.Booking{
		Name:            "Carlos Souza",
		Phone:           "(85) 99999-0003",
		BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		BookingType:     domain.TypeWalkIn,
		TotalPriceCents: 4000,
	}

	msg := BuildBookingMessage(booking, []string{"Corte"})

	assert.Contains(t, msg, "*Horário:* ordem de chegada")
}
