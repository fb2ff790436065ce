package gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"shareit/internal/models"
)

// Client пробрасывает проверенные запросы на серверный ярус как есть:
// тот же метод, путь и query, тот же заголовок идентичности.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Forward(ctx context.Context, method, pathAndQuery, userHeader string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+pathAndQuery, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if userHeader != "" {
		req.Header.Set(models.HeaderUserID, userHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach server tier: %w", err)
	}
	return resp, nil
}
