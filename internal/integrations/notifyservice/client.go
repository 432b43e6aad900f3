package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом уведомлений
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendAppointmentConfirmation отправляет запрос на письмо-подтверждение
func (c *Client) SendAppointmentConfirmation(ctx context.Context, confirmation *AppointmentConfirmation) error {
	url := fmt.Sprintf("%s/internal/notifications/appointment-confirmation", c.baseURL)

	body, err := json.Marshal(confirmation)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
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
	case http.StatusOK, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// SendAppointmentConfirmationWithGracefulDegradation отправляет подтверждение
// с graceful degradation: недоступность сервиса уведомлений не должна
// приводить к ошибке бронирования
func (c *Client) SendAppointmentConfirmationWithGracefulDegradation(ctx context.Context, confirmation *AppointmentConfirmation) error {
	c.log.Info("Sending appointment confirmation for appointment_id=%d", confirmation.AppointmentID)

	if err := c.SendAppointmentConfirmation(ctx, confirmation); err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("NotifyService unavailable, applying graceful degradation for appointment_id=%d: %v",
			confirmation.AppointmentID, err)
		return fmt.Errorf("%w: appointment_id=%d, error=%v", ErrServiceDegraded, confirmation.AppointmentID, err)
	}

	c.log.Info("Successfully sent confirmation for appointment_id=%d", confirmation.AppointmentID)
	return nil
}
