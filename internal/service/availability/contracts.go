package availability

import (
	"context"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
)

// ClosureRepository интерфейс репозитория закрытий дней
type ClosureRepository interface {
	Upsert(ctx context.Context, closure *domain.ClosurePeriod) (*domain.ClosurePeriod, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.ClosurePeriod, error)
	List(ctx context.Context, from time.Time) ([]*domain.ClosurePeriod, error)
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
