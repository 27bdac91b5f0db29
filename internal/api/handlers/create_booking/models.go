package create_booking

import (
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	createBooking "github.com/masterbarber/MB-BookingService/internal/usecase/create_booking"
	"github.com/masterbarber/MB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Services    []string `json:"services"`
	BookingDate string   `json:"bookingDate"`         // "2026-09-15"
	StartTime   string   `json:"startTime,omitempty"` // "10:00", не требуется для walk-in
	WalkIn      bool     `json:"walkIn,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Services        []string `json:"services"`
	BookingDate     string   `json:"bookingDate"`
	StartTime       *string  `json:"startTime,omitempty"`
	BookingType     string   `json:"bookingType"`
	Status          string   `json:"status"`
	DurationMinutes int      `json:"durationMinutes"`
	TotalPriceCents int64    `json:"totalPriceCents"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Для walk-in время начала не передается
	var startTime types.TimeString
	if !r.WalkIn && r.StartTime != "" {
		startTime, err = types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		Name:       r.Name,
		Phone:      r.Phone,
		ServiceIDs: r.Services,
		Date:       bookingDate,
		StartTime:  startTime,
		WalkIn:     r.WalkIn,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	response := &BookingResponse{
		ID:              resp.ID,
		Name:            resp.Name,
		Phone:           resp.Phone,
		Services:        resp.ServiceIDs,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		BookingType:     resp.BookingType,
		Status:          resp.Status,
		DurationMinutes: resp.DurationMinutes,
		TotalPriceCents: resp.TotalPriceCents,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}

	if !resp.StartTime.IsZero() {
		startStr := resp.StartTime.String()
		response.StartTime = &startStr
	}

	return response
}
