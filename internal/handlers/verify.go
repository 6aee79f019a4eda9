package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VerifyPayment handles GET /payments/verify
//
// This is the landing endpoint for payment provider redirects. The
// outcome is always a redirect: to the order history on success, the cart
// on failure or an invalid request, and the login page when no session
// token is present.
func (h *Handlers) VerifyPayment(c *gin.Context) {
	outcome := h.paymentService.Verify(c.Request.Context(), sessionFrom(c), c.Request.URL.Query())

	h.logger.Info("Payment verification resolved",
		zap.String("state", string(outcome.State)),
		zap.String("redirect", outcome.Redirect))

	target := outcome.Redirect
	if outcome.Message != "" {
		target += "?notice=" + url.QueryEscape(outcome.Message)
	}
	c.Redirect(http.StatusSeeOther, target)
}
