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

// Ensure HTTPPaymentClient implements service.PaymentClient
var _ service.PaymentClient = (*HTTPPaymentClient)(nil)

// HTTPPaymentClient performs provider verification calls against the
// commerce backend. The backend in turn settles with MoMo or Stripe and
// answers idempotently for an already verified order.
type HTTPPaymentClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPPaymentClient creates a new HTTP-based payment client.
func NewHTTPPaymentClient(cfg config.CommerceConfig, logger *zap.Logger) *HTTPPaymentClient {
	return &HTTPPaymentClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("payment-client"),
	}
}

// VerifyMomo verifies a MoMo payment for an order.
func (c *HTTPPaymentClient) VerifyMomo(ctx context.Context, session models.Session, orderID string) (*models.VerificationResult, error) {
	payload := map[string]string{"orderId": orderID}
	return c.verify(ctx, session, "verifyMomo", orderID, payload)
}

// VerifyStripe verifies a Stripe payment for an order, forwarding the
// success flag Stripe appended to the redirect.
func (c *HTTPPaymentClient) VerifyStripe(ctx context.Context, session models.Session, success, orderID string) (*models.VerificationResult, error) {
	payload := map[string]string{"success": success, "orderId": orderID}
	return c.verify(ctx, session, "verifyStripe", orderID, payload)
}

func (c *HTTPPaymentClient) verify(ctx context.Context, session models.Session, endpoint, orderID string, payload map[string]string) (*models.VerificationResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/order1/%s", c.baseURL, endpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	setHeaders(httpReq, session)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Verification request failed",
			zap.String("order_id", orderID),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Verification request returned error",
			zap.String("order_id", orderID),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("payment verification returned status %d", resp.StatusCode)
	}

	var result models.VerificationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	c.logger.Info("Verification response received",
		zap.String("order_id", orderID),
		zap.String("endpoint", endpoint),
		zap.Bool("success", result.Success))

	return &result, nil
}
