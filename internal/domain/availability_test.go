package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masterbarber/MB-BookingService/pkg/types"
)

func scheduledBooking(start types.TimeString, duration int) *Booking {
	return &Booking{
		ID:              1,
		Name:            "João Silva",
		Phone:           "(85) 99999-0001",
		ServiceIDs:      []string{"corte"},
		BookingDate:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		BookingType:     TypeScheduled,
		Status:          StatusConfirmed,
		DurationMinutes: duration,
	}
}

func walkInBooking() *Booking {
	return &Booking{
		ID:          2,
		Name:        "Pedro Costa",
		Phone:       "(85) 99999-0002",
		ServiceIDs:  []string{"barba"},
		BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		BookingType: TypeWalkIn,
		Status:      StatusConfirmed,
	}
}

func TestIsAdmissible_OverlapIsDurationAware(t *testing.T) {
	// Бронирование 10:00 на 50 минут (до 10:50)
	existing := []*Booking{scheduledBooking("10:00", 50)}

	tests := []struct {
		name     string
		start    types.TimeString
		duration int
		want     bool
	}{
		{"same start conflicts", "10:00", 30, false},
		{"start inside existing conflicts", "10:45", 30, false},
		{"new interval swallows existing", "09:38", 120, false},
		{"ends exactly at existing start is free", "09:00", 60, true},
		{"start after existing end is free", "11:15", 30, true},
		{"disjoint later slot is free", "13:00", 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsAdmissible(nil, tt.start, tt.duration, existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAdmissible_WalkInsDoNotBlockSlots(t *testing.T) {
	existing := []*Booking{walkInBooking()}

	ok, err := IsAdmissible(nil, "10:00", 30, existing)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAdmissible_Closures(t *testing.T) {
	morning := &ClosurePeriod{MorningClosed: true}
	afternoon := &ClosurePeriod{AfternoonClosed: true}
	fullDay := &ClosurePeriod{FullDayClosed: true, MorningClosed: true, AfternoonClosed: true}

	tests := []struct {
		name     string
		closure  *ClosurePeriod
		start    types.TimeString
		duration int
		want     bool
	}{
		{"morning closed blocks 09:00", morning, "09:00", 30, false},
		{"morning closed blocks 11:15", morning, "11:15", 30, false},
		{"morning closed leaves 13:00 open", morning, "13:00", 30, true},
		{"afternoon closed blocks 13:00", afternoon, "13:00", 30, false},
		{"afternoon closed blocks 18:00", afternoon, "18:00", 30, false},
		{"afternoon closed leaves 09:00 open", afternoon, "09:00", 30, true},
		// Старт в 12:00 не принадлежит ни утру, ни дню - половинные
		// закрытия его не блокируют, даже если интервал тянется до 13:30
		{"morning closed leaves 12:00 open", morning, "12:00", 90, true},
		{"afternoon closed leaves 12:00 open", afternoon, "12:00", 90, true},
		{"full day blocks morning", fullDay, "09:00", 30, false},
		{"full day blocks afternoon", fullDay, "15:00", 30, false},
		{"full day blocks 12:00", fullDay, "12:00", 90, false},
		{"nil closure allows everything", nil, "09:00", 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsAdmissible(tt.closure, tt.start, tt.duration, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsWalkInAdmissible(t *testing.T) {
	assert.True(t, IsWalkInAdmissible(nil))
	assert.True(t, IsWalkInAdmissible(&ClosurePeriod{MorningClosed: true}))
	assert.True(t, IsWalkInAdmissible(&ClosurePeriod{MorningClosed: true, AfternoonClosed: true}))
	assert.False(t, IsWalkInAdmissible(&ClosurePeriod{FullDayClosed: true}))
}

func TestAvailableStartTimes_SubsetOfGridInOrder(t *testing.T) {
	existing := []*Booking{scheduledBooking("10:00", 50)}

	slots, err := AvailableStartTimes(nil, 30, existing)
	require.NoError(t, err)

	// Каждый возвращенный слот принадлежит сетке, порядок сохранен
	for _, slot := range slots {
		assert.True(t, IsGridSlot(slot), "slot %s must be from the grid", slot)
	}
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))
	}

	assert.NotContains(t, slots, types.TimeString("10:00"))
	assert.NotContains(t, slots, types.TimeString("10:45"))
	assert.Contains(t, slots, types.TimeString("09:00"))
	assert.Contains(t, slots, types.TimeString("11:15"))
}

func TestAvailableStartTimes_LongDurationBlocksLateSlots(t *testing.T) {
	// Услуга на 90 минут: старт в 17:15 занял бы интервал до 18:45,
	// но конец рабочего дня сам по себе слот не исключает - исключают
	// только пересечения с бронированиями
	existing := []*Booking{scheduledBooking("18:00", 30)}

	slots, err := AvailableStartTimes(nil, 90, existing)
	require.NoError(t, err)

	assert.NotContains(t, slots, types.TimeString("17:15"))
	assert.NotContains(t, slots, types.TimeString("18:00"))
	assert.Contains(t, slots, types.TimeString("15:00"))
}

func TestAvailableStartTimes_LongerDurationNeverAddsSlots(t *testing.T) {
	// Увеличение суммарной длительности может только сузить выбор:
	// каждый слот, доступный для длинной услуги, доступен и для короткой
	existing := []*Booking{
		scheduledBooking("10:00", 50),
		scheduledBooking("14:15", 45),
	}

	short, err := AvailableStartTimes(nil, 20, existing)
	require.NoError(t, err)

	long, err := AvailableStartTimes(nil, 90, existing)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(long), len(short))
	for _, slot := range long {
		assert.Contains(t, short, slot)
	}
}

func TestAvailableStartTimes_FullDayClosedIsEmpty(t *testing.T) {
	closure := &ClosurePeriod{FullDayClosed: true, MorningClosed: true, AfternoonClosed: true}

	slots, err := AvailableStartTimes(closure, 30, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestClosurePeriod_Normalize(t *testing.T) {
	closure := &ClosurePeriod{FullDayClosed: true}
	closure.Normalize()

	assert.True(t, closure.MorningClosed)
	assert.True(t, closure.AfternoonClosed)

	partial := &ClosurePeriod{MorningClosed: true}
	partial.Normalize()

	assert.True(t, partial.MorningClosed)
	assert.False(t, partial.AfternoonClosed)
	assert.True(t, partial.IsPartial())
}
