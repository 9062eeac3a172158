package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDetail carries the catalog attributes the sales context needs to
// snapshot a product at order time.
type ProductDetail struct {
	ID    uuid.UUID       `json:"id"`
	Sku   string          `json:"sku"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Snapshot converts the detail into a frozen product snapshot
func (d ProductDetail) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ProductID: d.ID,
		Sku:       d.Sku,
		Name:      d.Name,
		Price:     d.Price,
	}
}

// ProductLookup is the port through which the sales context resolves a SKU to
// product details without depending on the catalog's internals.
// Absence is a normal outcome, not a failure: implementations return
// (nil, nil) when no product carries the SKU.
type ProductLookup interface {
	FindProductBySku(ctx context.Context, sku string) (*ProductDetail, error)
}
