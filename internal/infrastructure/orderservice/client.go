// Package orderservice is the HTTP adapter for the external order service.
package orderservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/DanielPopoola/shopfront-payment-service/internal/application"
	"github.com/DanielPopoola/shopfront-payment-service/internal/config"
)

type HTTPOrderClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOrderClient(cfg config.OrderServiceConfig) application.OrderClient {
	return &HTTPOrderClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

type orderResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	TotalPrice int64  `json:"totalPrice"`
	Status     string `json:"status"`
}

func (c *HTTPOrderClient) GetOrder(ctx context.Context, orderID int64) (*application.Order, error) {
	endpoint := fmt.Sprintf("%s/api/orders/%d", c.baseURL, orderID)
	return c.doOrderRequest(ctx, http.MethodGet, endpoint)
}

func (c *HTTPOrderClient) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*application.Order, error) {
	endpoint := fmt.Sprintf("%s/api/orders/%d/status?status=%s", c.baseURL, orderID, url.QueryEscape(status))
	return c.doOrderRequest(ctx, http.MethodPatch, endpoint)
}

func (c *HTTPOrderClient) doOrderRequest(ctx context.Context, method, endpoint string) (*application.Order, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("order service returned 404: %w", application.ErrOrderNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &OrderServiceError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var orderResp orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &application.Order{
		ID:         orderResp.ID,
		UserID:     orderResp.UserID,
		TotalCents: orderResp.TotalPrice,
		Status:     orderResp.Status,
	}, nil
}
