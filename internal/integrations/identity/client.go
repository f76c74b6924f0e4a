package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zohoustanley/barbeshop/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с IdentityService (каталог сотрудников)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента IdentityService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListStaff получает список сотрудников, опционально отфильтрованный по ролям.
// Сотрудники с неизвестной ролью пропускаются с warning: новый вариант роли
// на стороне IdentityService не должен ронять бронирование.
func (c *Client) ListStaff(ctx context.Context, roles []domain.Role) ([]domain.StaffMember, error) {
	endpoint := fmt.Sprintf("%s/internal/staff", c.baseURL)
	if len(roles) > 0 {
		names := make([]string, len(roles))
		for i, r := range roles {
			names[i] = string(r)
		}
		endpoint += "?roles=" + url.QueryEscape(strings.Join(names, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload staffListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	staff := make([]domain.StaffMember, 0, len(payload.Staff))
	for _, member := range payload.Staff {
		role, err := domain.ParseRole(member.Role)
		if err != nil {
			c.log.Warn("IdentityService returned staff id=%d with unknown role %q, skipping", member.ID, member.Role)
			continue
		}
		staff = append(staff, domain.StaffMember{
			ID:          member.ID,
			DisplayName: member.DisplayName,
			Role:        role,
		})
	}

	return staff, nil
}

// GetStaff получает сотрудника по ID. Используется для проверки прав
// по заголовку X-User-ID на защищенных ручках.
func (c *Client) GetStaff(ctx context.Context, id int64) (*domain.StaffMember, error) {
	endpoint := fmt.Sprintf("%s/internal/staff/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrStaffNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var member staffModel
	if err := json.NewDecoder(resp.Body).Decode(&member); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	role, err := domain.ParseRole(member.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: staff id=%d has unknown role %q", ErrInvalidResponse, member.ID, member.Role)
	}

	return &domain.StaffMember{
		ID:          member.ID,
		DisplayName: member.DisplayName,
		Role:        role,
	}, nil
}
