package get_available_slots

import (
	"time"

	"github.com/masterbarber/MB-BookingService/pkg/types"
)

// Request модель запроса на получение доступных времен начала
type Request struct {
	Date       time.Time // Дата бронирования (без времени)
	ServiceIDs []string  // Идентификаторы выбранных услуг (минимум одна)
}

// Response модель ответа со списком доступных времен начала
type Response struct {
	Date            time.Time          // Дата бронирования
	ServiceIDs      []string           // Выбранные услуги
	DurationMinutes int                // Суммарная длительность выбранных услуг
	TotalPriceCents int64              // Суммарная цена в сентаво
	Slots           []types.TimeString // Доступные времена начала в порядке сетки
}
