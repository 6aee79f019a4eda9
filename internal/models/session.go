package models

import (
	"crypto/sha256"
	"encoding/hex"
)

// Session carries the shopper's token for a single request. The original
// storefront kept the token in an ambient context; here it is an explicit
// value passed into every operation that needs it.
type Session struct {
	Token string
}

// Authenticated reports whether a token is present. Token validity is the
// backend's concern.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// CacheKey derives a stable key for per-session state. The token is
// hashed so raw credentials never appear in cache keys.
func (s Session) CacheKey() string {
	sum := sha256.Sum256([]byte(s.Token))
	return hex.EncodeToString(sum[:8])
}
