package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
)

// ErrDuplicateCode is returned by Save when the storage unique constraint on
// the order code column rejects the write.
var ErrDuplicateCode = shared.NewDomainError("DUPLICATE_CODE", "Order with this code already exists")

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its ID, including its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByCode finds an order by its code, including its items
	FindByCode(ctx context.Context, code string) (*Order, error)

	// FindAll finds all orders matching the filter (items not loaded)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates an order header (items are persisted separately)
	Save(ctx context.Context, order *Order) error

	// Delete soft-deletes an order
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderItemRepository defines the interface for order item persistence
type OrderItemRepository interface {
	// FindByOrder finds all items belonging to an order, in creation order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error)

	// CountByOrder counts items belonging to an order
	CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)

	// Save creates or updates an order item
	Save(ctx context.Context, item *OrderItem) error
}
