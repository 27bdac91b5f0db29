package upsert_closure

import (
	"context"

	"github.com/masterbarber/MB-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	SetClosure(ctx context.Context, req *models.SetClosureRequest) (*models.ClosureResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
