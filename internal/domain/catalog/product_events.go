package catalog

import (
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for the catalog context
const (
	EventTypeProductCreated = "catalog.product.created"
)

// ProductCreatedEvent is emitted when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Sku   string          `json:"sku"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, "Product", product.ID),
		Sku:             product.Sku,
		Name:            product.Name,
		Price:           product.Price,
	}
}
