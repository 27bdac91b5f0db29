package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnknownService возвращается, когда запрошена неизвестная услуга
	ErrUnknownService = errors.New("create_booking: unknown service")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrSundayClosed возвращается для воскресений - барбершоп не работает
	ErrSundayClosed = errors.New("create_booking: closed on sundays")

	// ErrInvalidTimeSlot возвращается, когда время начала не принадлежит сетке слотов
	ErrInvalidTimeSlot = errors.New("create_booking: start time is not a valid grid slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят или закрыт
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrFullDayClosed возвращается для walk-in, когда день закрыт полностью
	ErrFullDayClosed = errors.New("create_booking: barbershop is closed for the full day")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
