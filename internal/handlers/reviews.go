package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
)

// CreateReview handles POST /api/v1/reviews
func (h *Handlers) CreateReview(c *gin.Context) {
	var draft models.ReviewDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.reviewService.Submit(c.Request.Context(), sessionFrom(c), draft); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"product_id": draft.ProductID,
		"status":     models.ReviewStatusPending,
	})
}

// ListProductReviews handles GET /api/v1/products/:id/reviews
func (h *Handlers) ListProductReviews(c *gin.Context) {
	query := models.ReviewListQuery{
		ProductID: c.Param("id"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		query.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		query.Limit = limit
	}

	reviews, total, err := h.reviewService.List(c.Request.Context(), query)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   total,
	})
}
