package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
)

// ErrDuplicateSku is returned by Save when the storage unique constraint on
// the SKU column rejects the write. The constraint is authoritative even when
// an existence pre-check passed.
var ErrDuplicateSku = shared.NewDomainError("DUPLICATE_SKU", "Product with this SKU already exists")

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySku finds a product by its SKU
	FindBySku(ctx context.Context, sku string) (*Product, error)

	// ExistsBySku checks if a product with the given SKU exists
	ExistsBySku(ctx context.Context, sku string) (bool, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error
}
