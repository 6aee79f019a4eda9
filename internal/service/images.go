package service

import (
	"strings"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/config"
)

// ImageRewriter turns backend image references into absolute URLs. The
// backend is inconsistent about what it returns: order line items carry
// bare upload names, cart and catalog payloads carry server-relative
// paths. The rewriter canonicalizes both so only absolute URLs leave this
// service. Rewriting is idempotent: an already absolute ref passes through
// unchanged.
type ImageRewriter struct {
	baseURL       string
	uploadBaseURL string
}

// NewImageRewriter builds a rewriter from the commerce config.
func NewImageRewriter(cfg config.CommerceConfig) ImageRewriter {
	return ImageRewriter{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		uploadBaseURL: strings.TrimRight(cfg.UploadBaseURL, "/"),
	}
}

// Rewrite resolves a single image reference to an absolute URL.
func (r ImageRewriter) Rewrite(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if strings.HasPrefix(ref, "/") {
		return r.baseURL + ref
	}
	return r.uploadBaseURL + "/" + ref
}

// RewriteAll resolves every ref in a slice. A nil or empty input yields an
// empty, non-nil slice so rendered orders never see a null image array.
func (r ImageRewriter) RewriteAll(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, r.Rewrite(ref))
	}
	return out
}
