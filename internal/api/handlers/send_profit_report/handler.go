package send_profit_report

import (
	"errors"
	"net/http"

	"github.com/masterbarber/MB-BookingService/internal/api/handlers"
	"github.com/masterbarber/MB-BookingService/internal/service/reports"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidPeriod      = "período inválido, esperado daily, weekly ou monthly"
	msgSendFailed         = "falha ao enviar o relatório"
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

// Handle POST /api/v1/admin/reports/profit/send
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendProfitReportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reports/profit/send - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/reports/profit/send - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.SendProfitReport(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidPeriod):
			h.logger.Warn("POST /admin/reports/profit/send - Invalid period: %s", req.Period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("POST /admin/reports/profit/send - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, reports.ErrSendFailed):
			h.logger.Error("POST /admin/reports/profit/send - Send failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)

		default:
			h.logger.Error("POST /admin/reports/profit/send - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reports/profit/send - Report sent: period=%s, completed=%d",
		req.Period, result.CompletedCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
