package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/models"
)

// CatalogService serves catalog products with canonicalized image URLs.
type CatalogService struct {
	catalog  CatalogClient
	rewriter ImageRewriter
	logger   *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog CatalogClient, rewriter ImageRewriter, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		catalog:  catalog,
		rewriter: rewriter,
		logger:   logger.Named("catalog-service"),
	}
}

// GetProduct fetches one product and rewrites all its image refs.
func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to fetch product",
			zap.String("product_id", productID),
			zap.Error(err))
		return nil, err
	}

	product.SmallImage = s.rewriter.Rewrite(product.SmallImage)
	product.Image = s.rewriter.RewriteAll(product.Image)
	return product, nil
}
