package repository

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/service"
)

// Ensure PostgresVerificationStore implements service.VerificationStore
var _ service.VerificationStore = (*PostgresVerificationStore)(nil)

// PostgresVerificationStore persists payment verification attempts.
//
// Schema:
//
//	CREATE TABLE storefront_verifications (
//	    order_id    TEXT PRIMARY KEY,
//	    provider    TEXT NOT NULL,
//	    verified_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//
//	CREATE TABLE storefront_verification_attempts (
//	    id         BIGSERIAL PRIMARY KEY,
//	    order_id   TEXT NOT NULL,
//	    provider   TEXT NOT NULL,
//	    outcome    TEXT NOT NULL,
//	    message    TEXT NOT NULL DEFAULT '',
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//
// The primary key on order_id makes the first successful verification
// observable, so a duplicate provider redirect repeats the backend call
// but not the one-shot side effects.
type PostgresVerificationStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresVerificationStore creates a new Postgres-backed store.
func NewPostgresVerificationStore(db *sql.DB, logger *zap.Logger) *PostgresVerificationStore {
	return &PostgresVerificationStore{
		db:     db,
		logger: logger.Named("verification-store"),
	}
}

// MarkVerified records a successful verification and reports whether it is
// the first one seen for this order.
func (s *PostgresVerificationStore) MarkVerified(ctx context.Context, orderID, provider string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO storefront_verifications (order_id, provider)
		VALUES ($1, $2)
		ON CONFLICT (order_id) DO NOTHING`,
		orderID, provider,
	)
	if err != nil {
		s.logger.Error("Failed to mark verification",
			zap.String("order_id", orderID),
			zap.Error(err))
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// RecordAttempt appends a verification attempt to the audit trail.
func (s *PostgresVerificationStore) RecordAttempt(ctx context.Context, orderID, provider, outcome, message string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO storefront_verification_attempts (order_id, provider, outcome, message)
		VALUES ($1, $2, $3, $4)`,
		orderID, provider, outcome, message,
	)
	if err != nil {
		s.logger.Error("Failed to record verification attempt",
			zap.String("order_id", orderID),
			zap.Error(err))
	}
	return err
}
