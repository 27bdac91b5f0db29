package list_closures

import (
	"context"

	"github.com/masterbarber/MB-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	ListClosures(ctx context.Context) (*models.ClosureListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
