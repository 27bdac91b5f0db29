package reports

import (
	"context"

	"github.com/masterbarber/MB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// NotificationSender интерфейс для отправки отчетов владельцу
type NotificationSender interface {
	SendProfitReport(ctx context.Context, text string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
