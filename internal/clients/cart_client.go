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

// Ensure HTTPCartClient implements service.CartClient
var _ service.CartClient = (*HTTPCartClient)(nil)

// HTTPCartClient talks to the commerce backend cart endpoints.
type HTTPCartClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPCartClient creates a new HTTP-based cart client.
func NewHTTPCartClient(cfg config.CommerceConfig, logger *zap.Logger) *HTTPCartClient {
	return &HTTPCartClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("cart-client"),
	}
}

// GetCart fetches the shopper's current cart.
func (c *HTTPCartClient) GetCart(ctx context.Context, session models.Session) (*models.Cart, error) {
	url := fmt.Sprintf("%s/api/cart", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	setHeaders(httpReq, session)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Cart fetch failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cart fetch returned status %d", resp.StatusCode)
	}

	var result struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Cart    *models.Cart `json:"cart"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("cart fetch rejected: %s", result.Message)
	}

	return result.Cart, nil
}

// UpdateQuantity sets a cart line's quantity by cart item ID.
func (c *HTTPCartClient) UpdateQuantity(ctx context.Context, session models.Session, cartItemID string, quantity int) error {
	body, err := json.Marshal(map[string]int{"quantity": quantity})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/cart/items/%s", c.baseURL, cartItemID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	setHeaders(httpReq, session)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Quantity update failed",
			zap.String("cart_item_id", cartItemID),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("quantity update returned status %d", resp.StatusCode)
	}

	return nil
}

// RemoveItem deletes a cart line by cart item ID.
func (c *HTTPCartClient) RemoveItem(ctx context.Context, session models.Session, cartItemID string) error {
	url := fmt.Sprintf("%s/api/cart/items/%s", c.baseURL, cartItemID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	setHeaders(httpReq, session)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Item removal failed",
			zap.String("cart_item_id", cartItemID),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("item removal returned status %d", resp.StatusCode)
	}

	return nil
}
