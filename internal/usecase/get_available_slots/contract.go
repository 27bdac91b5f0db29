package get_available_slots

import (
	"context"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// ClosureRepository интерфейс репозитория закрытий дней
type ClosureRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.ClosurePeriod, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
