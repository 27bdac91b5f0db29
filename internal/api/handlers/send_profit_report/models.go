package send_profit_report

import (
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	"github.com/masterbarber/MB-BookingService/internal/service/reports/models"
)

// SendProfitReportRequest HTTP request model
type SendProfitReportRequest struct {
	Period string `json:"period"` // daily / weekly / monthly
	Date   string `json:"date"`   // "2026-09-15"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SendProfitReportRequest) ToServiceRequest() (*models.GetProfitReportRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.GetProfitReportRequest{
		Period: r.Period,
		Date:   date,
	}, nil
}
