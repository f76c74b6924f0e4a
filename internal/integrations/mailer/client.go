package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с почтовым сервисом.
// Отправка писем не критична для бронирования: вызывающий код
// логирует ошибку и продолжает работу.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента почтового сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет письмо. MessageID генерируется на нашей стороне,
// чтобы письмо можно было проследить в логах обоих сервисов.
func (c *Client) Send(ctx context.Context, msg Message) error {
	messageID := uuid.NewString()

	payload, err := json.Marshal(sendRequest{
		MessageID: messageID,
		Message:   msg,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/send", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
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
		// Продолжаем обработку
	case http.StatusUnprocessableEntity:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: message_id=%s: %s", ErrRejected, messageID, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !result.Accepted {
		return fmt.Errorf("%w: message_id=%s", ErrRejected, messageID)
	}

	c.log.Info("Mail sent to=%s subject=%q message_id=%s", msg.To, msg.Subject, messageID)
	return nil
}
