package reports

import "errors"

var (
	// ErrInvalidPeriod возвращается при неизвестном периоде отчета
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSendFailed возвращается при сбое отправки отчета
	ErrSendFailed = errors.New("failed to send report")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
