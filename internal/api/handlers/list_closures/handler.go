package list_closures

import (
	"net/http"

	"github.com/masterbarber/MB-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/admin/closures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListClosures(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/closures - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/closures - %d closures", len(result.Closures))
	handlers.RespondJSON(w, http.StatusOK, result)
}
