package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetCart handles GET /api/v1/cart
func (h *Handlers) GetCart(c *gin.Context) {
	lines, err := h.cartService.GetCartView(c.Request.Context(), sessionFrom(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": lines})
}

// UpdateCartQuantity handles PUT /api/v1/cart/items/:id/quantity
//
// The quantity arrives as the raw input string so the blank-input no-op
// and the zero-means-remove contract are decided in one place.
func (h *Handlers) UpdateCartQuantity(c *gin.Context) {
	cartItemID := c.Param("id")

	var req struct {
		Quantity string `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.cartService.SetQuantity(c.Request.Context(), sessionFrom(c), cartItemID, req.Quantity); err != nil {
		h.logger.Warn("Cart mutation rejected",
			zap.String("cart_item_id", cartItemID),
			zap.Error(err))
		handleError(c, err)
		return
	}

	// Fire-and-forget: the new quantity is visible on the next cart fetch.
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
