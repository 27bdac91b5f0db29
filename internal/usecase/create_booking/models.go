package create_booking

import (
	"time"

	"github.com/masterbarber/MB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name       string           // Имя клиента
	Phone      string           // Телефон клиента
	ServiceIDs []string         // Идентификаторы выбранных услуг (минимум одна)
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала из сетки (пусто для walk-in)
	WalkIn     bool             // Клиент пришел без записи
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	Name            string           // Имя клиента
	Phone           string           // Телефон клиента
	ServiceIDs      []string         // Выбранные услуги
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала (пусто для walk-in)
	BookingType     string           // Тип бронирования (scheduled / walk_in)
	Status          string           // Статус бронирования
	DurationMinutes int              // Длительность в минутах
	TotalPriceCents int64            // Суммарная цена в сентаво

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
