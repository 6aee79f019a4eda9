package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/metrics"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
)

// OrderService aggregates order summaries with their separately fetched
// line items into a render-ready order history.
type OrderService struct {
	orderClient OrderClient
	snapshots   SnapshotCache
	rewriter    ImageRewriter
	features    config.FeatureFlags
	logger      *zap.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderClient OrderClient, snapshots SnapshotCache, rewriter ImageRewriter, features config.FeatureFlags, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderClient: orderClient,
		snapshots:   snapshots,
		rewriter:    rewriter,
		features:    features,
		logger:      logger.Named("order-service"),
	}
}

// LoadOrders runs the full aggregation: list the user's order summaries,
// fetch each order's line items concurrently, rewrite image refs, and sort
// newest first. Aggregation is all-or-nothing: a single failed line-item
// fetch fails the whole call and leaves the session's previous snapshot
// untouched. Refresh is pull-based only; every call re-runs the sequence.
func (s *OrderService) LoadOrders(ctx context.Context, session models.Session) ([]models.Order, error) {
	if !session.Authenticated() {
		return nil, errors.ErrUnauthenticated
	}

	summaries, err := s.orderClient.ListUserOrders(ctx, session)
	if err != nil {
		s.logger.Error("Failed to list user orders", zap.Error(err))
		metrics.OrderAggregations.WithLabelValues("error").Inc()
		return nil, err
	}

	orders := make([]models.Order, len(summaries))
	g, gctx := errgroup.WithContext(ctx)
	for i := range summaries {
		i := i
		order := summaries[i]
		g.Go(func() error {
			items, err := s.orderClient.GetOrderItems(gctx, session, order.ID)
			if err != nil {
				return fmt.Errorf("fetch items for order %s: %w", order.ID, err)
			}
			merged := make([]models.OrderLine, 0, len(items))
			for _, item := range items {
				item.Image = s.rewriter.RewriteAll(item.Image)
				merged = append(merged, item)
			}
			order.Items = merged
			orders[i] = order
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("Order aggregation failed", zap.Error(err))
		metrics.OrderAggregations.WithLabelValues("error").Inc()
		return nil, err
	}

	// The backend claims to order by creation time; the merged list must
	// hold that regardless. Stable so equal timestamps keep server order.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	if s.features.EnableOrderSnapshots {
		if err := s.snapshots.SetOrders(ctx, session.CacheKey(), orders); err != nil {
			// Log but don't fail; the snapshot is advisory.
			s.logger.Error("Failed to snapshot orders", zap.Error(err))
		}
	}

	metrics.OrderAggregations.WithLabelValues("ok").Inc()
	return orders, nil
}

// LastKnownOrders returns the most recent successfully aggregated order
// list for this session, if any. Used to keep a stale-but-usable history
// visible when a refresh fails.
func (s *OrderService) LastKnownOrders(ctx context.Context, session models.Session) ([]models.Order, error) {
	if !session.Authenticated() {
		return nil, errors.ErrUnauthenticated
	}
	return s.snapshots.GetOrders(ctx, session.CacheKey())
}
