package service

import (
	"testing"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/config"
)

func testRewriter() ImageRewriter {
	return NewImageRewriter(config.CommerceConfig{
		BaseURL:       "http://backend:3000",
		UploadBaseURL: "http://backend:3000/uploads",
	})
}

func TestRewrite(t *testing.T) {
	r := testRewriter()

	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{"bare upload name", "shirt.jpg", "http://backend:3000/uploads/shirt.jpg"},
		{"server-relative path", "/images/shirt.jpg", "http://backend:3000/images/shirt.jpg"},
		{"already absolute", "http://backend:3000/uploads/shirt.jpg", "http://backend:3000/uploads/shirt.jpg"},
		{"absolute https", "https://cdn.example.com/shirt.jpg", "https://cdn.example.com/shirt.jpg"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Rewrite(tt.ref); got != tt.expected {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.ref, got, tt.expected)
			}
		})
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	r := testRewriter()

	refs := []string{"shirt.jpg", "/images/shirt.jpg", "https://cdn.example.com/x.jpg"}
	for _, ref := range refs {
		once := r.Rewrite(ref)
		twice := r.Rewrite(once)
		if once != twice {
			t.Errorf("Rewrite not idempotent for %q: first %q, second %q", ref, once, twice)
		}
	}
}

func TestRewriteAllNeverNil(t *testing.T) {
	r := testRewriter()

	if got := r.RewriteAll(nil); got == nil {
		t.Error("Expected non-nil slice for nil input")
	}
	if got := r.RewriteAll([]string{}); got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", got)
	}

	got := r.RewriteAll([]string{"a.jpg", "b.jpg"})
	if len(got) != 2 {
		t.Fatalf("Expected 2 refs, got %d", len(got))
	}
	if got[0] != "http://backend:3000/uploads/a.jpg" {
		t.Errorf("Unexpected first ref: %s", got[0])
	}
}
