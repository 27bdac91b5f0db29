package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/masterbarber/MB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.Name)
	if len([]rune(name)) < domain.MinNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, domain.MinNameLength)
	}
	if len([]rune(name)) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if countDigits(req.Phone) < domain.MinPhoneDigits {
		return fmt.Errorf("%w: phone must contain at least %d digits", ErrInvalidInput, domain.MinPhoneDigits)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be at most %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if len(req.ServiceIDs) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: too many services, max %d", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Для walk-in время начала не требуется и игнорируется
	if req.WalkIn {
		return nil
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Время начала должно принадлежать сетке слотов
	if !domain.IsGridSlot(req.StartTime) {
		return ErrInvalidTimeSlot
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования:
// не в прошлом, не дальше горизонта бронирования и не воскресенье
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, domain.BookingHorizonMonths, 0)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d month(s) in advance", ErrDateTooFarInFuture, domain.BookingHorizonMonths)
	}

	if bookingDate.Weekday() == time.Sunday {
		return ErrSundayClosed
	}

	return nil
}

// countDigits считает количество цифр в строке (телефон может содержать
// форматирование вида "(85) 99999-9999")
func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
