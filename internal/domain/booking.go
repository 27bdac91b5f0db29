package domain

import (
	"time"

	"github.com/masterbarber/MB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
)

// BookingType distinguishes scheduled bookings from walk-ins
type BookingType string

const (
	TypeScheduled BookingType = "scheduled"
	// TypeWalkIn бронирование без фиксированного времени: принимается в любой
	// не полностью закрытый день и не занимает слоты расписания
	TypeWalkIn BookingType = "walk_in"
)

// Booking represents a barbershop appointment
type Booking struct {
	ID          int64
	Name        string
	Phone       string
	ServiceIDs  []string
	BookingDate time.Time
	StartTime   types.TimeString // пустое для walk-in
	BookingType BookingType
	Status      BookingStatus

	// Derived from the service catalog at creation time
	DurationMinutes int
	TotalPriceCents int64

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsWalkIn returns true for bookings without a fixed start time
func (b *Booking) IsWalkIn() bool {
	return b.BookingType == TypeWalkIn
}

// OccupiesInterval returns true if the booking reserves a time interval
// on the schedule. Walk-ins never do.
func (b *Booking) OccupiesInterval() bool {
	return !b.IsWalkIn() && !b.StartTime.IsZero() && b.DurationMinutes > 0
}

// CanBeCompleted returns true if the booking can transition to completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// IsCompleted returns true if the work has been marked done
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// DayBookingsFilter фильтр для выборки бронирований
type DayBookingsFilter struct {
	StartDate *time.Time     // Начало периода (nil - без ограничения)
	EndDate   *time.Time     // Конец периода (nil - без ограничения)
	Status    *BookingStatus // Фильтр по статусу (опционально)
}
