package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/docsync/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером синхронизации
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SyncDocument отправляет операции и CRDT состояние документа на сервер
func (c *Client) SyncDocument(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
	var resp api.SyncResponse
	path := fmt.Sprintf("/api/v1/sync/%s", url.PathEscape(req.DocumentID))
	if err := c.doRequestWithRetry(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}

	if !resp.Success {
		return &resp, remoteError(resp.Errors)
	}

	return &resp, nil
}

// CreateEntity создает сущность на сервере
func (c *Client) CreateEntity(ctx context.Context, req api.EntityRequest) (*api.EntityResponse, error) {
	var resp api.EntityResponse
	if err := c.doRequestWithRetry(ctx, http.MethodPost, "/api/v1/entities", req, &resp); err != nil {
		return nil, fmt.Errorf("create entity request failed: %w", err)
	}
	return &resp, nil
}

// DeleteEntity удаляет сущность на сервере
func (c *Client) DeleteEntity(ctx context.Context, entityType, entityID string) (*api.EntityResponse, error) {
	var resp api.EntityResponse
	path := fmt.Sprintf("/api/v1/entities/%s/%s", url.PathEscape(entityType), url.PathEscape(entityID))
	if err := c.doRequestWithRetry(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete entity request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// remoteError строит ошибку уровня приложения из тела успешного HTTP ответа
func remoteError(errs []api.APIError) error {
	if len(errs) == 0 {
		return &RemoteError{Code: "UNKNOWN", Message: "sync rejected without details"}
	}

	// Хватит первой ошибки; terminal если хоть одна помечена постоянной
	first := errs[0]
	terminal := false
	for _, e := range errs {
		if e.Terminal {
			terminal = true
		}
	}

	return &RemoteError{Code: first.Code, Message: first.Message, Terminal: terminal}
}

// doRequestWithRetry выполняет запрос с ограниченным fibonacci backoff
// для транзиентных сбоев транспорта. Терминальные ошибки не повторяются.
func (c *Client) doRequestWithRetry(ctx context.Context, method, path string, body, result interface{}) error {
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(200*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.doRequest(ctx, method, path, body, result)
		if err == nil {
			return nil
		}
		if IsTerminal(err) {
			return err
		}
		return retry.RetryableError(err)
	})
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(respBody)
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			message = errResp.Message
		}

		if isTerminalStatus(resp.StatusCode) {
			return &TerminalError{Status: resp.StatusCode, Message: message}
		}

		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, message)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// isTerminalStatus: 4xx детерминированы, кроме таймаута и rate limit
func isTerminalStatus(status int) bool {
	if status < 400 || status >= 500 {
		return false
	}
	return status != http.StatusRequestTimeout && status != http.StatusTooManyRequests
}
