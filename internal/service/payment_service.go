package service

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/metrics"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
)

const (
	redirectLogin  = "/login"
	redirectCart   = "/cart"
	redirectOrders = "/orders"
)

// PaymentService drives payment verification after a provider redirects
// the shopper back. Each call classifies the redirect once, makes exactly
// one provider verification call, and resolves into a terminal outcome
// with a redirect target. The flow is safe to re-run with the same URL:
// the backend answers idempotently for an already verified order and the
// attempt store suppresses duplicate side effects.
type PaymentService struct {
	payments  PaymentClient
	snapshots SnapshotCache
	attempts  VerificationStore
	events    CheckoutEventPublisher
	features  config.FeatureFlags
	logger    *zap.Logger
}

// NewPaymentService creates a new payment verification service.
func NewPaymentService(
	payments PaymentClient,
	snapshots SnapshotCache,
	attempts VerificationStore,
	events CheckoutEventPublisher,
	features config.FeatureFlags,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		payments:  payments,
		snapshots: snapshots,
		attempts:  attempts,
		events:    events,
		features:  features,
		logger:    logger.Named("payment-service"),
	}
}

// Verify runs one verification attempt driven by the redirect's query
// parameters. It never returns an error: every path resolves into an
// outcome the HTTP layer can turn into a redirect.
func (s *PaymentService) Verify(ctx context.Context, session models.Session, query url.Values) *models.VerificationOutcome {
	if !session.Authenticated() {
		metrics.PaymentVerifications.WithLabelValues("none", "unauthenticated").Inc()
		return &models.VerificationOutcome{
			State:    models.VerificationUnauthenticated,
			Redirect: redirectLogin,
			Message:  "please login to verify payment",
		}
	}

	req, err := models.ParseVerification(query)
	if err != nil {
		s.logger.Warn("Invalid verification redirect", zap.Error(err))
		metrics.PaymentVerifications.WithLabelValues("none", "invalid").Inc()
		return &models.VerificationOutcome{
			State:    models.VerificationInvalid,
			Redirect: redirectCart,
			Message:  "invalid payment verification request",
		}
	}

	s.logger.Info("Verifying payment",
		zap.String("order_id", req.OrderID),
		zap.String("provider", string(req.Provider)))

	var result *models.VerificationResult
	switch req.Provider {
	case models.ProviderMoMo:
		result, err = s.payments.VerifyMomo(ctx, session, req.OrderID)
	case models.ProviderStripe:
		result, err = s.payments.VerifyStripe(ctx, session, req.Success, req.OrderID)
	}

	if err != nil {
		s.logger.Error("Verification call failed",
			zap.String("order_id", req.OrderID),
			zap.String("provider", string(req.Provider)),
			zap.Error(err))
		s.recordAttempt(ctx, req, "error", err.Error())
		metrics.PaymentVerifications.WithLabelValues(string(req.Provider), "error").Inc()
		return &models.VerificationOutcome{
			State:    models.VerificationFailed,
			Redirect: redirectCart,
			Message:  "payment verification failed: " + err.Error(),
		}
	}

	if !result.Success {
		declined := errors.NewProviderDeclined(string(req.Provider), result.Message)
		s.logger.Warn("Payment declined",
			zap.String("order_id", req.OrderID),
			zap.String("provider", string(req.Provider)),
			zap.String("message", result.Message))
		s.recordAttempt(ctx, req, "declined", result.Message)
		metrics.PaymentVerifications.WithLabelValues(string(req.Provider), "declined").Inc()
		return &models.VerificationOutcome{
			State:    models.VerificationFailed,
			Redirect: redirectCart,
			Message:  declined.Error(),
		}
	}

	s.finalize(ctx, session, req)
	metrics.PaymentVerifications.WithLabelValues(string(req.Provider), "succeeded").Inc()
	return &models.VerificationOutcome{
		State:    models.VerificationSucceeded,
		Redirect: redirectOrders,
		Message:  "payment successful",
	}
}

// finalize applies the success side effects: replace the session cart
// snapshot with an empty cart and, on the first success for this order,
// publish checkout events. The cart clear is gated strictly behind a
// successful verification response and is never run speculatively.
func (s *PaymentService) finalize(ctx context.Context, session models.Session, req *models.VerificationRequest) {
	if err := s.snapshots.ClearCart(ctx, session.CacheKey()); err != nil {
		// The backend already cleared the authoritative cart; a stale
		// snapshot resolves on the next fetch.
		s.logger.Error("Failed to clear cart snapshot",
			zap.String("order_id", req.OrderID),
			zap.Error(err))
	}

	first, err := s.attempts.MarkVerified(ctx, req.OrderID, string(req.Provider))
	if err != nil {
		s.logger.Error("Failed to record verification",
			zap.String("order_id", req.OrderID),
			zap.Error(err))
		// Without the latch we cannot tell a repeat from a first success;
		// skip the events rather than risk publishing them twice.
		return
	}

	if first && s.features.EnableCheckoutEvents {
		if err := s.events.PublishPaymentVerified(ctx, req.OrderID, string(req.Provider)); err != nil {
			s.logger.Error("Failed to publish payment verified event",
				zap.String("order_id", req.OrderID),
				zap.Error(err))
		}
		if err := s.events.PublishCartCleared(ctx, req.OrderID); err != nil {
			s.logger.Error("Failed to publish cart cleared event",
				zap.String("order_id", req.OrderID),
				zap.Error(err))
		}
	}

	s.logger.Info("Payment verified",
		zap.String("order_id", req.OrderID),
		zap.String("provider", string(req.Provider)),
		zap.Bool("first_verification", first))
}

func (s *PaymentService) recordAttempt(ctx context.Context, req *models.VerificationRequest, outcome, message string) {
	if err := s.attempts.RecordAttempt(ctx, req.OrderID, string(req.Provider), outcome, message); err != nil {
		s.logger.Error("Failed to record verification attempt",
			zap.String("order_id", req.OrderID),
			zap.Error(err))
	}
}
