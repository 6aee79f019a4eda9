package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/service"
)

// Ensure HTTPOrderClient implements service.OrderClient
var _ service.OrderClient = (*HTTPOrderClient)(nil)

// HTTPOrderClient talks to the commerce backend order endpoints.
type HTTPOrderClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPOrderClient creates a new HTTP-based order client.
func NewHTTPOrderClient(cfg config.CommerceConfig, logger *zap.Logger) *HTTPOrderClient {
	return &HTTPOrderClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("order-client"),
	}
}

// ListUserOrders fetches the current user's order summaries. The backend
// exposes this as a POST with an empty body; the user is identified by the
// token header.
func (c *HTTPOrderClient) ListUserOrders(ctx context.Context, session models.Session) ([]models.Order, error) {
	url := fmt.Sprintf("%s/api/order1/userorders", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, err
	}

	setHeaders(httpReq, session)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Order list request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order list returned status %d", resp.StatusCode)
	}

	var result struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Orders  []models.Order `json:"orders"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("order list rejected: %s", result.Message)
	}

	return result.Orders, nil
}

// GetOrderItems fetches the line items of one order.
func (c *HTTPOrderClient) GetOrderItems(ctx context.Context, session models.Session, orderID string) ([]models.OrderLine, error) {
	url := fmt.Sprintf("%s/api/order1/items/%s", c.baseURL, orderID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	setHeaders(httpReq, session)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Order items request failed",
			zap.String("order_id", orderID),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order items returned status %d", resp.StatusCode)
	}

	var result struct {
		Success bool               `json:"success"`
		Items   []models.OrderLine `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result.Items, nil
}
