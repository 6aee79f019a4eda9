package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/service"
)

// Ensure RedisSnapshotCache implements service.SnapshotCache
var _ service.SnapshotCache = (*RedisSnapshotCache)(nil)

const (
	cartKeyPrefix   = "storefront:cart:"
	ordersKeyPrefix = "storefront:orders:"
	defaultSnapTTL  = 30 * time.Minute
)

// RedisSnapshotCache holds per-session cart and order snapshots. A
// snapshot is the last view the shopper successfully saw; it is always
// replaced wholesale so readers never observe a partial update.
type RedisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisSnapshotCache creates a new Redis-backed snapshot cache.
func NewRedisSnapshotCache(cfg config.RedisConfig, logger *zap.Logger) *RedisSnapshotCache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultSnapTTL
	}

	return &RedisSnapshotCache{
		client: client,
		ttl:    ttl,
		logger: logger.Named("snapshot-cache"),
	}
}

// GetOrders retrieves the last aggregated order list for a session. A
// missing snapshot is not an error; callers get an empty result.
func (c *RedisSnapshotCache) GetOrders(ctx context.Context, key string) ([]models.Order, error) {
	data, err := c.client.Get(ctx, ordersKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		c.logger.Error("Orders snapshot get error", zap.Error(err))
		return nil, err
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SetOrders replaces the order snapshot for a session.
func (c *RedisSnapshotCache) SetOrders(ctx context.Context, key string, orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, ordersKeyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Error("Orders snapshot set error", zap.Error(err))
		return err
	}
	return nil
}

// SetCart replaces the cart snapshot for a session.
func (c *RedisSnapshotCache) SetCart(ctx context.Context, key string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, cartKeyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Error("Cart snapshot set error", zap.Error(err))
		return err
	}
	return nil
}

// ClearCart replaces the cart snapshot with an empty cart. Used when a
// payment verification succeeds and the backend has emptied the
// authoritative cart.
func (c *RedisSnapshotCache) ClearCart(ctx context.Context, key string) error {
	empty := &models.Cart{Items: []models.CartItem{}}
	data, err := json.Marshal(empty)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, cartKeyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Error("Cart snapshot clear error", zap.Error(err))
		return err
	}
	c.logger.Debug("Cart snapshot cleared", zap.String("key", key))
	return nil
}
