package get_available_slots

import (
	"github.com/masterbarber/MB-BookingService/internal/domain"
	getAvailableSlots "github.com/masterbarber/MB-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	Services        []string `json:"services"`
	DurationMinutes int      `json:"durationMinutes"`
	TotalPriceCents int64    `json:"totalPriceCents"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		Services:        resp.ServiceIDs,
		DurationMinutes: resp.DurationMinutes,
		TotalPriceCents: resp.TotalPriceCents,
		Slots:           slots,
	}
}
