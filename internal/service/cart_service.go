package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/metrics"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
)

// CartService builds the cart view model and forwards quantity mutations
// to the backend. The cart itself is server-authoritative: mutations are
// fire-and-forget and only become visible on the next cart fetch.
type CartService struct {
	cartClient CartClient
	snapshots  SnapshotCache
	rewriter   ImageRewriter
	logger     *zap.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartClient CartClient, snapshots SnapshotCache, rewriter ImageRewriter, logger *zap.Logger) *CartService {
	return &CartService{
		cartClient: cartClient,
		snapshots:  snapshots,
		rewriter:   rewriter,
		logger:     logger.Named("cart-service"),
	}
}

// BuildCartView flattens a server cart payload into render-ready lines.
// It is a pure transform: server order is preserved, quantities and prices
// are taken verbatim, and a nil cart or empty items collection yields an
// empty slice, never an error.
func BuildCartView(cart *models.Cart, rewriter ImageRewriter) []models.CartLine {
	lines := make([]models.CartLine, 0)
	if cart == nil {
		return lines
	}
	for _, item := range cart.Items {
		lines = append(lines, models.CartLine{
			ProductID:  item.Product.ID,
			Name:       item.Product.Name,
			Size:       item.Size,
			Quantity:   item.Quantity,
			UnitPrice:  item.Price,
			CartItemID: item.CartItemID,
			ImageURL:   rewriter.Rewrite(item.Product.SmallImage),
		})
	}
	return lines
}

// GetCartView fetches the current cart and returns its view model. The
// fetched cart replaces the session snapshot wholesale on success; on
// failure the previous snapshot is untouched.
func (s *CartService) GetCartView(ctx context.Context, session models.Session) ([]models.CartLine, error) {
	if !session.Authenticated() {
		return nil, errors.ErrUnauthenticated
	}

	cart, err := s.cartClient.GetCart(ctx, session)
	if err != nil {
		s.logger.Error("Failed to fetch cart", zap.Error(err))
		return nil, err
	}

	if err := s.snapshots.SetCart(ctx, session.CacheKey(), cart); err != nil {
		// Log but don't fail; the snapshot is advisory.
		s.logger.Error("Failed to snapshot cart", zap.Error(err))
	}

	return BuildCartView(cart, s.rewriter), nil
}

// SetQuantity applies the shopper's quantity input to one cart line,
// identified only by its cart item ID:
//
//   - blank input is a no-op, rejected before any request is sent
//   - zero means removal
//   - one or more means an update
//
// The local view is never mutated optimistically; callers see the new
// quantity after their next cart fetch.
func (s *CartService) SetQuantity(ctx context.Context, session models.Session, cartItemID, rawQuantity string) error {
	if !session.Authenticated() {
		return errors.ErrUnauthenticated
	}
	if cartItemID == "" {
		return errors.NewValidationError("cart_item_id", "cart item ID is required")
	}

	raw := strings.TrimSpace(rawQuantity)
	if raw == "" {
		return nil
	}

	quantity, err := strconv.Atoi(raw)
	if err != nil || quantity < 0 {
		return errors.NewValidationError("quantity", "quantity must be a non-negative integer")
	}

	if quantity == 0 {
		s.logger.Info("Removing cart item", zap.String("cart_item_id", cartItemID))
		if err := s.cartClient.RemoveItem(ctx, session, cartItemID); err != nil {
			s.logger.Error("Failed to remove cart item",
				zap.String("cart_item_id", cartItemID),
				zap.Error(err))
			return err
		}
		metrics.CartMutations.WithLabelValues("remove").Inc()
		return nil
	}

	s.logger.Info("Updating cart item quantity",
		zap.String("cart_item_id", cartItemID),
		zap.Int("quantity", quantity))
	if err := s.cartClient.UpdateQuantity(ctx, session, cartItemID, quantity); err != nil {
		s.logger.Error("Failed to update cart item quantity",
			zap.String("cart_item_id", cartItemID),
			zap.Error(err))
		return err
	}
	metrics.CartMutations.WithLabelValues("update").Inc()
	return nil
}
