package whatsapp

// OutgoingMessage модель сообщения для WhatsApp-шлюза
type OutgoingMessage struct {
	Phone   string `json:"phone"`   // Номер получателя в международном формате
	Message string `json:"message"` // Текст сообщения
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
