package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
)

// ProfileService proxies shopper profile reads and updates.
type ProfileService struct {
	users  UserClient
	logger *zap.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(users UserClient, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		users:  users,
		logger: logger.Named("profile-service"),
	}
}

// GetProfile fetches the shopper's profile.
func (s *ProfileService) GetProfile(ctx context.Context, session models.Session) (*models.UserProfile, error) {
	if !session.Authenticated() {
		return nil, errors.ErrUnauthenticated
	}
	return s.users.GetProfile(ctx, session)
}

// UpdateProfile updates editable profile fields.
func (s *ProfileService) UpdateProfile(ctx context.Context, session models.Session, req *models.UpdateProfileRequest) (*models.UserProfile, error) {
	if !session.Authenticated() {
		return nil, errors.ErrUnauthenticated
	}
	if req.Name == "" {
		return nil, errors.NewValidationError("name", "name is required")
	}

	profile, err := s.users.UpdateProfile(ctx, session, req)
	if err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}
