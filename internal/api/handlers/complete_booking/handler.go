package complete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/masterbarber/MB-BookingService/internal/api/handlers"
	"github.com/masterbarber/MB-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "identificador de agendamento inválido"
	msgBookingNotFound  = "agendamento não encontrado"
	msgCannotComplete   = "agendamento não pode ser concluído"
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

// Handle PATCH /api/v1/bookings/{bookingId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId}/complete - Invalid booking ID: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Complete(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId}/complete - Booking not found: id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotComplete):
			h.logger.Warn("PATCH /bookings/{bookingId}/complete - Cannot complete: id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotComplete)

		default:
			h.logger.Error("PATCH /bookings/{bookingId}/complete - Failed: id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{bookingId}/complete - Completed booking id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
