package get_week_bookings

import (
	"context"

	"github.com/masterbarber/MB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetWeekBookings(ctx context.Context, req *models.GetWeekBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
