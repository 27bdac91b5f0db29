package models

import (
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
)

// Request модели

// SetClosureRequest запрос на установку закрытия на дату.
// Повторный запрос на ту же дату полностью заменяет флаги.
type SetClosureRequest struct {
	Date            time.Time `json:"date"`
	MorningClosed   bool      `json:"morningClosed"`
	AfternoonClosed bool      `json:"afternoonClosed"`
	FullDayClosed   bool      `json:"fullDayClosed"`
}

// ToDomain конвертирует request в domain модель с нормализацией флагов
func (r *SetClosureRequest) ToDomain() *domain.ClosurePeriod {
	closure := &domain.ClosurePeriod{
		Date:            r.Date,
		MorningClosed:   r.MorningClosed,
		AfternoonClosed: r.AfternoonClosed,
		FullDayClosed:   r.FullDayClosed,
	}
	closure.Normalize()
	return closure
}

// Response модели

// ClosureResponse ответ с данными закрытия
type ClosureResponse struct {
	Date            string `json:"date"` // "2026-09-15"
	MorningClosed   bool   `json:"morningClosed"`
	AfternoonClosed bool   `json:"afternoonClosed"`
	FullDayClosed   bool   `json:"fullDayClosed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClosureListResponse ответ со списком закрытий
type ClosureListResponse struct {
	Closures []ClosureResponse `json:"closures"`
}

// FromDomainClosure конвертирует domain модель в DTO
func FromDomainClosure(c *domain.ClosurePeriod) *ClosureResponse {
	if c == nil {
		return nil
	}

	return &ClosureResponse{
		Date:            c.Date.Format(domain.DateFormat),
		MorningClosed:   c.MorningClosed,
		AfternoonClosed: c.AfternoonClosed,
		FullDayClosed:   c.FullDayClosed,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// FromDomainClosureList конвертирует список domain моделей в DTO
func FromDomainClosureList(closures []*domain.ClosurePeriod) *ClosureListResponse {
	if closures == nil {
		return &ClosureListResponse{
			Closures: []ClosureResponse{},
		}
	}

	resp := &ClosureListResponse{
		Closures: make([]ClosureResponse, len(closures)),
	}

	for i, closure := range closures {
		if closureResp := FromDomainClosure(closure); closureResp != nil {
			resp.Closures[i] = *closureResp
		}
	}

	return resp
}
