package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/clients"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/service"
)

// Handlers holds all HTTP handlers for the storefront service.
type Handlers struct {
	cartService    *service.CartService
	orderService   *service.OrderService
	paymentService *service.PaymentService
	reviewService  *service.ReviewService
	catalogService *service.CatalogService
	profileService *service.ProfileService
	config         *config.Config
	logger         *zap.Logger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(
	cartService *service.CartService,
	orderService *service.OrderService,
	paymentService *service.PaymentService,
	reviewService *service.ReviewService,
	catalogService *service.CatalogService,
	profileService *service.ProfileService,
	cfg *config.Config,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		cartService:    cartService,
		orderService:   orderService,
		paymentService: paymentService,
		reviewService:  reviewService,
		catalogService: catalogService,
		profileService: profileService,
		config:         cfg,
		logger:         logger.Named("handlers"),
	}
}

// sessionFrom builds the request's session from the token header. The
// token is opaque here; validity is decided by the commerce backend.
func sessionFrom(c *gin.Context) models.Session {
	return models.Session{Token: c.GetHeader(clients.HeaderToken)}
}
