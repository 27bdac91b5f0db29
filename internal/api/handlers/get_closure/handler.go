package get_closure

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/masterbarber/MB-BookingService/internal/api/handlers"
	"github.com/masterbarber/MB-BookingService/internal/domain"
	"github.com/masterbarber/MB-BookingService/internal/service/availability"
)

const (
	msgInvalidDate     = "formato de data inválido, esperado YYYY-MM-DD"
	msgClosureNotFound = "fechamento não encontrado para esta data"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/closures/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/closures/{date} - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetClosure(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrClosureNotFound):
			h.logger.Warn("GET /admin/closures/{date} - Not found: date=%s", dateStr)
			handlers.RespondNotFound(w, msgClosureNotFound)

		default:
			h.logger.Error("GET /admin/closures/{date} - Failed: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/closures/{date} - Fetched closure for date=%s", dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
