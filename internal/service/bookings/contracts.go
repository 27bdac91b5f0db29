package bookings

import (
	"context"

	"github.com/masterbarber/MB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
	Complete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
