package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business hours and half-day boundaries.
// Morning is [09:00, 12:00), afternoon is [13:00, 18:00].
const (
	OpeningHour        = 9
	MorningEndHour     = 12
	AfternoonStartHour = 13
	ClosingHour        = 18
)

// Booking field validation constants
const (
	MinNameLength         = 3
	MinPhoneDigits        = 10
	MaxNameLength         = 120
	MaxPhoneLength        = 20
	MaxServicesPerBooking = 10
)

// BookingHorizonMonths максимальный горизонт бронирования: один календарный месяц
const BookingHorizonMonths = 1
