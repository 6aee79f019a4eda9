package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/errors"
)

// handleError maps the service error taxonomy to HTTP responses. Anything
// not recognized is treated as an upstream failure: the backend call went
// wrong, local state is untouched, and the shopper can retry.
func handleError(c *gin.Context, err error) {
	switch e := err.(type) {
	case *errors.ValidationError:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": e.Message,
			"field": e.Field,
		})
		return
	case *errors.ProviderDeclinedError:
		c.JSON(http.StatusBadGateway, gin.H{"error": e.Error()})
		return
	}

	switch err {
	case errors.ErrUnauthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.ErrInvalidRequest:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream request failed"})
	}
}
