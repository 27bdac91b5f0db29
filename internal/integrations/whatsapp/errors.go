package whatsapp

import "errors"

var (
	// ErrDisabled возвращается, когда шлюз не сконфигурирован (уведомления выключены)
	ErrDisabled = errors.New("whatsapp client: gateway is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")
)
