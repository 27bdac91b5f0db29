package get_closure

import (
	"context"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetClosure(ctx context.Context, date time.Time) (*models.ClosureResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
