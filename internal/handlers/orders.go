package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/errors"
)

// GetOrders handles GET /api/v1/orders
//
// Every call re-runs the full aggregation; this endpoint doubles as the
// explicit refresh trigger. When the refresh fails the previous snapshot
// is returned alongside the error so the shopper keeps a usable, clearly
// stale order history.
func (h *Handlers) GetOrders(c *gin.Context) {
	session := sessionFrom(c)

	orders, err := h.orderService.LoadOrders(c.Request.Context(), session)
	if err != nil {
		if err == errors.ErrUnauthenticated {
			handleError(c, err)
			return
		}

		stale, cacheErr := h.orderService.LastKnownOrders(c.Request.Context(), session)
		if cacheErr != nil {
			h.logger.Error("Failed to load order snapshot", zap.Error(cacheErr))
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "failed to refresh orders",
			"orders": stale,
			"stale":  true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
