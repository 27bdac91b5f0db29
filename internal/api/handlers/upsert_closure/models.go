package upsert_closure

import (
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
	"github.com/masterbarber/MB-BookingService/internal/service/availability/models"
)

// SetClosureRequest HTTP request model (дата приходит в пути)
type SetClosureRequest struct {
	MorningClosed   bool `json:"morningClosed"`
	AfternoonClosed bool `json:"afternoonClosed"`
	FullDayClosed   bool `json:"fullDayClosed"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetClosureRequest) ToServiceRequest(dateStr string) (*models.SetClosureRequest, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &models.SetClosureRequest{
		Date:            date,
		MorningClosed:   r.MorningClosed,
		AfternoonClosed: r.AfternoonClosed,
		FullDayClosed:   r.FullDayClosed,
	}, nil
}
