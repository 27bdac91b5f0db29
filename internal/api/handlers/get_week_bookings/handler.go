package get_week_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/api/handlers"
	"github.com/masterbarber/MB-BookingService/internal/domain"
	"github.com/masterbarber/MB-BookingService/internal/service/bookings"
	"github.com/masterbarber/MB-BookingService/internal/service/bookings/models"
)

const (
	msgMissingDate   = "parâmetro date é obrigatório"
	msgInvalidDate   = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidStatus = "status inválido"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/week?date=2026-09-15
// Возвращает бронирования за календарную неделю, содержащую дату
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings/week - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.GetWeekBookingsRequest{Date: date}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetWeekBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings/week - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings/week - Failed: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/week - %d bookings for week of %s", len(result.Bookings), dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
