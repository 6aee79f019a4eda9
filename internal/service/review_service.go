package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
)

const (
	defaultReviewPage  = 1
	defaultReviewLimit = 10
	maxReviewLimit     = 50
)

// ReviewService gates review submission on order state and forwards
// accepted drafts to the backend.
type ReviewService struct {
	reviews ReviewClient
	logger  *zap.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviews ReviewClient, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		logger:  logger.Named("review-service"),
	}
}

// CanReview reports whether a line item is reviewable: only items of
// delivered orders are. Delivered is terminal, so reviewability never
// regresses.
func (s *ReviewService) CanReview(order models.Order) bool {
	return order.Status == models.OrderStatusDelivered
}

// NewDraft opens a fresh draft bound to one line item's product.
func (s *ReviewService) NewDraft(order models.Order, line models.OrderLine) (*models.ReviewDraft, error) {
	if !s.CanReview(order) {
		return nil, errors.NewValidationError("order", "only delivered orders can be reviewed")
	}
	return &models.ReviewDraft{ProductID: line.ProductID}, nil
}

// Submit posts a draft as a pending review. A rating outside 1..5 is
// rejected before any request is sent. The displayed review list is not
// mutated locally; the new review appears once the backend approves it.
func (s *ReviewService) Submit(ctx context.Context, session models.Session, draft models.ReviewDraft) error {
	if !session.Authenticated() {
		return errors.ErrUnauthenticated
	}
	if draft.ProductID == "" {
		return errors.NewValidationError("product_id", "product ID is required")
	}
	if draft.Rate < 1 || draft.Rate > 5 {
		return errors.NewValidationError("rate", "rating must be between 1 and 5")
	}

	if err := s.reviews.CreateReview(ctx, session, draft); err != nil {
		s.logger.Error("Failed to submit review",
			zap.String("product_id", draft.ProductID),
			zap.Error(err))
		return err
	}

	s.logger.Info("Review submitted",
		zap.String("product_id", draft.ProductID),
		zap.Int("rate", draft.Rate))
	return nil
}

// List fetches a page of published reviews for a product, applying the
// backend's paging defaults.
func (s *ReviewService) List(ctx context.Context, query models.ReviewListQuery) ([]models.Review, int, error) {
	if query.ProductID == "" {
		return nil, 0, errors.NewValidationError("product_id", "product ID is required")
	}
	if query.Page < 1 {
		query.Page = defaultReviewPage
	}
	if query.Limit < 1 {
		query.Limit = defaultReviewLimit
	}
	if query.Limit > maxReviewLimit {
		query.Limit = maxReviewLimit
	}
	if query.SortBy == "" {
		query.SortBy = "created_at"
	}
	if query.SortOrder == "" {
		query.SortOrder = "desc"
	}
	return s.reviews.ListReviews(ctx, query)
}
