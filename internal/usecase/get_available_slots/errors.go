package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrUnknownService возвращается, когда запрошена неизвестная услуга
	ErrUnknownService = errors.New("get_available_slots: unknown service")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrSundayClosed возвращается для воскресений - барбершоп не работает
	ErrSundayClosed = errors.New("get_available_slots: closed on sundays")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
