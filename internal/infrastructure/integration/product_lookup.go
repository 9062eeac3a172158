package integration

import (
	"context"
	"errors"

	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/sales"
	"github.com/shopcore/backend/internal/domain/shared"
)

// CatalogProductLookup resolves SKUs for the sales context by delegating to
// the catalog's product repository. It is the only bridge between the two
// contexts; sales never touches catalog types directly.
type CatalogProductLookup struct {
	products catalog.ProductRepository
}

// NewCatalogProductLookup creates a new CatalogProductLookup
func NewCatalogProductLookup(products catalog.ProductRepository) *CatalogProductLookup {
	return &CatalogProductLookup{products: products}
}

// FindProductBySku resolves a SKU to product details. Absence is reported as
// (nil, nil), not as an error: an unknown SKU is a normal outcome for the
// order workflow.
func (l *CatalogProductLookup) FindProductBySku(ctx context.Context, sku string) (*sales.ProductDetail, error) {
	product, err := l.products.FindBySku(ctx, sku)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sales.ProductDetail{
		ID:    product.ID,
		Sku:   product.Sku,
		Name:  product.Name,
		Price: product.Price,
	}, nil
}

// Ensure CatalogProductLookup implements the sales port
var _ sales.ProductLookup = (*CatalogProductLookup)(nil)
