package models

import (
	"errors"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetDayBookingsRequest запрос на получение бронирований за день
type GetDayBookingsRequest struct {
	Date   time.Time `json:"date"`
	Status *string   `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// GetWeekBookingsRequest запрос на получение бронирований за неделю,
// содержащую указанную дату
type GetWeekBookingsRequest struct {
	Date   time.Time `json:"date"`
	Status *string   `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Services        []string `json:"services"`
	BookingDate     string   `json:"bookingDate"` // "2026-09-15"
	StartTime       *string  `json:"startTime,omitempty"` // "10:00", отсутствует для walk-in
	BookingType     string   `json:"bookingType"`
	Status          string   `json:"status"`
	DurationMinutes int      `json:"durationMinutes"`
	TotalPriceCents int64    `json:"totalPriceCents"`

	CompletedAt *string `json:"completedAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		Name:            b.Name,
		Phone:           b.Phone,
		Services:        b.ServiceIDs,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		BookingType:     string(b.BookingType),
		Status:          string(b.Status),
		DurationMinutes: b.DurationMinutes,
		TotalPriceCents: b.TotalPriceCents,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	// Walk-in бронирования не имеют времени начала
	if !b.StartTime.IsZero() {
		startStr := b.StartTime.String()
		resp.StartTime = &startStr
	}

	// Конвертируем CompletedAt в строку ISO 8601
	if b.CompletedAt != nil {
		completedStr := b.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completedStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusConfirmed,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
