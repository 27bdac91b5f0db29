package availability

import "errors"

var (
	// ErrClosureNotFound возвращается, когда закрытие на дату не найдено
	ErrClosureNotFound = errors.New("closure not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
