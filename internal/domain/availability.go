package domain

import (
	"github.com/masterbarber/MB-BookingService/pkg/types"
)

// intervalsOverlap проверяет РЕАЛЬНОЕ пересечение интервалов [s1,e1) и [s2,e2)
// в минутах от полуночи. Интервалы пересекаются, только если:
// - начало одного СТРОГО раньше конца другого И наоборот.
// Граничные случаи (конец одного равен началу другого) пересечением не считаются.
func intervalsOverlap(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// isInClosedHalf проверяет, попадает ли время начала в закрытую половину дня.
// Половина определяется по часу начала: утро [09:00,12:00), день [13:00,18:00].
// Старт в 12:xx не принадлежит ни одной половине и половинными закрытиями
// не блокируется.
func isInClosedHalf(closure *ClosurePeriod, startTime types.TimeString) bool {
	hour, err := startTime.Hour()
	if err != nil {
		return false
	}

	if closure.MorningClosed && hour >= OpeningHour && hour < MorningEndHour {
		return true
	}
	if closure.AfternoonClosed && hour >= AfternoonStartHour && hour <= ClosingHour {
		return true
	}
	return false
}

// IsAdmissible решает, допустимо ли начало бронирования длительностью
// durationMinutes в startTime с учетом закрытий и существующих бронирований:
// (a) день не закрыт полностью;
// (b) время начала не попадает в закрытую половину дня;
// (c) интервал [start, start+duration) не пересекается ни с одним активным
//     бронированием (пересечение с учетом длительности, не равенство стартов).
// closure может быть nil - нет ограничений для этой даты.
func IsAdmissible(closure *ClosurePeriod, startTime types.TimeString, durationMinutes int, bookings []*Booking) (bool, error) {
	if closure != nil {
		if closure.FullDayClosed {
			return false, nil
		}
		if isInClosedHalf(closure, startTime) {
			return false, nil
		}
	}

	start, err := startTime.MinutesFromMidnight()
	if err != nil {
		return false, err
	}
	end := start + durationMinutes

	for _, booking := range bookings {
		if !booking.OccupiesInterval() {
			continue
		}

		bookingStart, err := booking.StartTime.MinutesFromMidnight()
		if err != nil {
			// Бронирование с некорректным временем не блокирует слот
			continue
		}
		bookingEnd := bookingStart + booking.DurationMinutes

		if intervalsOverlap(start, end, bookingStart, bookingEnd) {
			return false, nil
		}
	}

	return true, nil
}

// IsWalkInAdmissible решает допустимость walk-in бронирования:
// блокируется только полным закрытием дня, существующие бронирования
// и половинные закрытия не учитываются.
func IsWalkInAdmissible(closure *ClosurePeriod) bool {
	return closure == nil || !closure.FullDayClosed
}

// AvailableStartTimes фильтрует сетку до допустимых времен начала для
// бронирования длительностью durationMinutes. Возвращает слоты в порядке
// сетки (по возрастанию времени). Пустой результат - валидный ответ.
func AvailableStartTimes(closure *ClosurePeriod, durationMinutes int, bookings []*Booking) ([]types.TimeString, error) {
	available := make([]types.TimeString, 0, len(timeGrid))

	for _, slot := range timeGrid {
		ok, err := IsAdmissible(closure, slot, durationMinutes, bookings)
		if err != nil {
			return nil, err
		}
		if ok {
			available = append(available, slot)
		}
	}

	return available, nil
}
