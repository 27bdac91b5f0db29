package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/masterbarber/MB-BookingService/internal/domain"
)

// Client клиент для отправки уведомлений через WhatsApp-шлюз.
// Если gatewayURL пуст, отправка выключена: все методы возвращают
// ErrDisabled, а вызывающая сторона пишет это в лог и продолжает работу.
type Client struct {
	gatewayURL string
	ownerPhone string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента WhatsApp
func NewClient(gatewayURL, ownerPhone string, timeout time.Duration, log Logger) *Client {
	return &Client{
		gatewayURL: gatewayURL,
		ownerPhone: ownerPhone,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingCreated отправляет владельцу уведомление о новом бронировании
func (c *Client) SendBookingCreated(ctx context.Context, booking *domain.Booking, serviceNames []string) error {
	text := BuildBookingMessage(booking, serviceNames)
	return c.send(ctx, text)
}

// SendProfitReport отправляет владельцу готовый текст отчета о выручке
func (c *Client) SendProfitReport(ctx context.Context, text string) error {
	return c.send(ctx, text)
}

func (c *Client) send(ctx context.Context, text string) error {
	if c.gatewayURL == "" {
		return ErrDisabled
	}

	payload, err := json.Marshal(OutgoingMessage{
		Phone:   c.ownerPhone,
		Message: text,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/messages", c.gatewayURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		c.log.Info("WhatsApp message sent to %s", c.ownerPhone)
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
