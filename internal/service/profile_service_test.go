package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
)

func TestGetProfileRequiresToken(t *testing.T) {
	svc := NewProfileService(&stubUserClient{}, zap.NewNop())

	if _, err := svc.GetProfile(context.Background(), models.Session{}); err != errors.ErrUnauthenticated {
		t.Errorf("Expected ErrUnauthenticated, got %v", err)
	}
}

func TestGetProfilePassesThrough(t *testing.T) {
	client := &stubUserClient{profile: &models.UserProfile{ID: "usr_1", Name: "An"}}
	svc := NewProfileService(client, zap.NewNop())

	profile, err := svc.GetProfile(context.Background(), models.Session{Token: "tok"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if profile.ID != "usr_1" || profile.Name != "An" {
		t.Errorf("Unexpected profile: %+v", profile)
	}
}

func TestUpdateProfileRejectsEmptyName(t *testing.T) {
	client := &stubUserClient{}
	svc := NewProfileService(client, zap.NewNop())

	_, err := svc.UpdateProfile(context.Background(), models.Session{Token: "tok"}, &models.UpdateProfileRequest{})
	if _, ok := err.(*errors.ValidationError); !ok {
		t.Errorf("Expected ValidationError, got %v", err)
	}
	if len(client.updateCalls) != 0 {
		t.Error("Expected no update call for empty name")
	}
}

func TestUpdateProfileRequiresToken(t *testing.T) {
	client := &stubUserClient{}
	svc := NewProfileService(client, zap.NewNop())

	_, err := svc.UpdateProfile(context.Background(), models.Session{}, &models.UpdateProfileRequest{Name: "An"})
	if err != errors.ErrUnauthenticated {
		t.Errorf("Expected ErrUnauthenticated, got %v", err)
	}
	if len(client.updateCalls) != 0 {
		t.Error("Expected no update call without a token")
	}
}

func TestUpdateProfileForwardsRequest(t *testing.T) {
	client := &stubUserClient{profile: &models.UserProfile{ID: "usr_1", Name: "An", Phone: "0900000000"}}
	svc := NewProfileService(client, zap.NewNop())

	req := &models.UpdateProfileRequest{Name: "An", Phone: "0900000000"}
	profile, err := svc.UpdateProfile(context.Background(), models.Session{Token: "tok"}, req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(client.updateCalls) != 1 || client.updateCalls[0].Name != "An" {
		t.Errorf("Expected one update call with name An, got %v", client.updateCalls)
	}
	if profile.Phone != "0900000000" {
		t.Errorf("Unexpected profile: %+v", profile)
	}
}
