package models

import (
	"net/url"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/errors"
)

// PaymentProvider identifies which payment gateway redirected the shopper
// back to the storefront.
type PaymentProvider string

const (
	ProviderMoMo   PaymentProvider = "momo"
	ProviderStripe PaymentProvider = "stripe"
)

// VerificationRequest is the parsed form of a payment provider redirect.
// The provider is decided exactly once, here, by which discriminator
// parameter the redirect carries; nothing downstream re-inspects raw query
// parameters.
type VerificationRequest struct {
	Provider   PaymentProvider
	OrderID    string
	ResultCode string // MoMo only
	Success    string // Stripe only
}

// ParseVerification classifies a provider redirect. The presence of
// resultCode, with any value including "0", selects MoMo; otherwise the
// presence of success selects Stripe. A redirect with no orderId or with
// neither discriminator is invalid.
func ParseVerification(query url.Values) (*VerificationRequest, error) {
	orderID := query.Get("orderId")
	if orderID == "" {
		return nil, errors.ErrInvalidRequest
	}

	if _, ok := query["resultCode"]; ok {
		return &VerificationRequest{
			Provider:   ProviderMoMo,
			OrderID:    orderID,
			ResultCode: query.Get("resultCode"),
		}, nil
	}

	if _, ok := query["success"]; ok {
		return &VerificationRequest{
			Provider: ProviderStripe,
			OrderID:  orderID,
			Success:  query.Get("success"),
		}, nil
	}

	return nil, errors.ErrInvalidRequest
}

// VerificationResult is the commerce backend's answer to a provider
// verification call.
type VerificationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerificationState is the terminal state of one verification attempt.
type VerificationState string

const (
	VerificationSucceeded       VerificationState = "succeeded"
	VerificationFailed          VerificationState = "failed"
	VerificationInvalid         VerificationState = "invalid"
	VerificationUnauthenticated VerificationState = "unauthenticated"
)

// VerificationOutcome tells the HTTP layer where to send the shopper after
// a verification attempt and what to show them.
type VerificationOutcome struct {
	State    VerificationState
	Redirect string
	Message  string
}
