package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/service"
)

// Ensure HTTPReviewClient implements service.ReviewClient
var _ service.ReviewClient = (*HTTPReviewClient)(nil)

// HTTPReviewClient talks to the commerce backend review endpoints.
type HTTPReviewClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPReviewClient creates a new HTTP-based review client.
func NewHTTPReviewClient(cfg config.CommerceConfig, logger *zap.Logger) *HTTPReviewClient {
	return &HTTPReviewClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("review-client"),
	}
}

// CreateReview posts a review draft. Every submission goes in as pending;
// moderation is the backend's concern.
func (c *HTTPReviewClient) CreateReview(ctx context.Context, session models.Session, draft models.ReviewDraft) error {
	payload := map[string]interface{}{
		"productId": draft.ProductID,
		"rate":      draft.Rate,
		"status":    models.ReviewStatusPending,
	}
	if draft.Content != "" {
		payload["content"] = draft.Content
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s/api/reviews", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return err
	}

	setHeaders(httpReq, session)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Review create failed",
			zap.String("product_id", draft.ProductID),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("review create returned status %d", resp.StatusCode)
	}

	return nil
}

// ListReviews fetches a page of reviews for a product.
func (c *HTTPReviewClient) ListReviews(ctx context.Context, query models.ReviewListQuery) ([]models.Review, int, error) {
	params := url.Values{}
	params.Set("productId", query.ProductID)
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("sortBy", query.SortBy)
	params.Set("sortOrder", query.SortOrder)

	reqURL := fmt.Sprintf("%s/api/reviews?%s", c.baseURL, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, err
	}

	setHeaders(httpReq, models.Session{})

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Review list failed",
			zap.String("product_id", query.ProductID),
			zap.Error(err))
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("review list returned status %d", resp.StatusCode)
	}

	var result struct {
		Success bool            `json:"success"`
		Reviews []models.Review `json:"reviews"`
		Total   int             `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, 0, err
	}

	return result.Reviews, result.Total, nil
}
