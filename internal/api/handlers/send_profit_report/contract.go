package send_profit_report

import (
	"context"

	"github.com/masterbarber/MB-BookingService/internal/service/reports/models"
)

type ReportService interface {
	SendProfitReport(ctx context.Context, req *models.GetProfitReportRequest) (*models.ProfitReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
