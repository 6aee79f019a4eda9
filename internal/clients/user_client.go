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

// Ensure HTTPUserClient implements service.UserClient
var _ service.UserClient = (*HTTPUserClient)(nil)

// HTTPUserClient talks to the commerce backend profile endpoints.
type HTTPUserClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPUserClient creates a new HTTP-based user client.
func NewHTTPUserClient(cfg config.CommerceConfig, logger *zap.Logger) *HTTPUserClient {
	return &HTTPUserClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("user-client"),
	}
}

// GetProfile fetches the authenticated shopper's profile.
func (c *HTTPUserClient) GetProfile(ctx context.Context, session models.Session) (*models.UserProfile, error) {
	url := fmt.Sprintf("%s/api/users/me", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	setHeaders(httpReq, session)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Profile fetch failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile fetch returned status %d", resp.StatusCode)
	}

	var profile models.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateProfile updates the shopper's editable profile fields.
func (c *HTTPUserClient) UpdateProfile(ctx context.Context, session models.Session, req *models.UpdateProfileRequest) (*models.UserProfile, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/users/profile", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	setHeaders(httpReq, session)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Profile update failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile update returned status %d", resp.StatusCode)
	}

	var profile models.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}
