package service

import (
	"context"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
)

// CartClient talks to the commerce backend cart endpoints.
type CartClient interface {
	GetCart(ctx context.Context, session models.Session) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, session models.Session, cartItemID string, quantity int) error
	RemoveItem(ctx context.Context, session models.Session, cartItemID string) error
}

// OrderClient talks to the commerce backend order endpoints.
type OrderClient interface {
	ListUserOrders(ctx context.Context, session models.Session) ([]models.Order, error)
	GetOrderItems(ctx context.Context, session models.Session, orderID string) ([]models.OrderLine, error)
}

// PaymentClient performs provider verification calls against the backend.
type PaymentClient interface {
	VerifyMomo(ctx context.Context, session models.Session, orderID string) (*models.VerificationResult, error)
	VerifyStripe(ctx context.Context, session models.Session, success, orderID string) (*models.VerificationResult, error)
}

// ReviewClient talks to the commerce backend review endpoints.
type ReviewClient interface {
	CreateReview(ctx context.Context, session models.Session, draft models.ReviewDraft) error
	ListReviews(ctx context.Context, query models.ReviewListQuery) ([]models.Review, int, error)
}

// CatalogClient fetches catalog products.
type CatalogClient interface {
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
}

// UserClient talks to the backend profile endpoints.
type UserClient interface {
	GetProfile(ctx context.Context, session models.Session) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, session models.Session, req *models.UpdateProfileRequest) (*models.UserProfile, error)
}

// SnapshotCache holds the last-known-good cart and order views per
// session. Snapshots are always replaced wholesale, never mutated in
// place.
type SnapshotCache interface {
	GetOrders(ctx context.Context, key string) ([]models.Order, error)
	SetOrders(ctx context.Context, key string, orders []models.Order) error
	SetCart(ctx context.Context, key string, cart *models.Cart) error
	ClearCart(ctx context.Context, key string) error
}

// VerificationStore records payment verification attempts. MarkVerified
// reports whether this is the first recorded success for the order, which
// gates one-shot side effects across duplicate redirects.
type VerificationStore interface {
	MarkVerified(ctx context.Context, orderID string, provider string) (first bool, err error)
	RecordAttempt(ctx context.Context, orderID, provider, outcome, message string) error
}

// CheckoutEventPublisher emits checkout lifecycle events.
type CheckoutEventPublisher interface {
	PublishPaymentVerified(ctx context.Context, orderID string, provider string) error
	PublishCartCleared(ctx context.Context, orderID string) error
}
