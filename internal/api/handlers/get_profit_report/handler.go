package get_profit_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/api/handlers"
	"github.com/masterbarber/MB-BookingService/internal/domain"
	"github.com/masterbarber/MB-BookingService/internal/service/reports"
	"github.com/masterbarber/MB-BookingService/internal/service/reports/models"
)

const (
	msgMissingPeriod = "parâmetro period é obrigatório (daily, weekly ou monthly)"
	msgInvalidPeriod = "período inválido, esperado daily, weekly ou monthly"
	msgMissingDate   = "parâmetro date é obrigatório"
	msgInvalidDate   = "formato de data inválido, esperado YYYY-MM-DD"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reports/profit?period=daily&date=2026-09-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/reports/profit - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetProfitReport(r.Context(), &models.GetProfitReportRequest{
		Period: period,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidPeriod):
			h.logger.Warn("GET /admin/reports/profit - Invalid period: %s", period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /admin/reports/profit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /admin/reports/profit - Failed: period=%s, date=%s, error=%v", period, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reports/profit - period=%s, completed=%d", period, result.CompletedCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
