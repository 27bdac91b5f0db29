package domain

import (
	"github.com/masterbarber/MB-BookingService/pkg/types"
)

// timeGrid фиксированная сетка допустимых времен начала в течение рабочего дня.
// Сетка нерегулярная (шаг варьируется) и содержит обеденный разрыв 12:10-13:00.
// Общая конфигурация процесса, не зависит от даты.
var timeGrid = []types.TimeString{
	"09:00",
	"09:38",
	"10:00",
	"10:45",
	"11:15",
	"12:00",
	"13:00",
	"13:30",
	"14:15",
	"15:00",
	"15:45",
	"16:30",
	"17:15",
	"18:00",
}

// TimeGrid returns the full ordered grid of valid start times
func TimeGrid() []types.TimeString {
	out := make([]types.TimeString, len(timeGrid))
	copy(out, timeGrid)
	return out
}

// IsGridSlot reports whether t is a member of the time grid
func IsGridSlot(t types.TimeString) bool {
	for _, slot := range timeGrid {
		if slot == t {
			return true
		}
	}
	return false
}

// OccupiedSlots возвращает упорядоченную подпоследовательность сетки,
// попадающую в интервал [startTime, startTime+durationMinutes).
// Бронирование занимает каждый слот, который пересекает, а не только свой
// стартовый: услуга на 50 минут с 09:00 занимает и 09:00, и 09:38.
func OccupiedSlots(startTime types.TimeString, durationMinutes int) ([]types.TimeString, error) {
	start, err := startTime.MinutesFromMidnight()
	if err != nil {
		return nil, err
	}
	end := start + durationMinutes

	occupied := make([]types.TimeString, 0)
	for _, slot := range timeGrid {
		m, err := slot.MinutesFromMidnight()
		if err != nil {
			continue
		}
		if m >= start && m < end {
			occupied = append(occupied, slot)
		}
	}
	return occupied, nil
}
