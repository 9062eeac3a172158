package sales

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFraud     OrderStatus = "fraud"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusFinished  OrderStatus = "finished"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusFraud, OrderStatusPacked,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusFinished, OrderStatusCanceled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// The order lifecycle is declared here for downstream consumers; the creation
// workflow itself only ever writes the initial "created" state.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusCreated:
		return target == OrderStatusPaid || target == OrderStatusFraud || target == OrderStatusCanceled
	case OrderStatusPaid, OrderStatusFraud:
		return target == OrderStatusPacked || target == OrderStatusCanceled
	case OrderStatusPacked:
		return target == OrderStatusShipped
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	case OrderStatusDelivered:
		return target == OrderStatusFinished
	case OrderStatusFinished, OrderStatusCanceled:
		return false // Terminal states
	}
	return false
}

// ProductSnapshot is a point-in-time copy of a product's attributes captured
// when an order item references it. It is frozen at order-creation time and
// never re-derived from the live product, insulating order history from
// catalog changes.
type ProductSnapshot struct {
	ProductID uuid.UUID       `json:"id"`
	Sku       string          `json:"sku"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// Value implements driver.Valuer for JSON column storage
func (s ProductSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSON column retrieval
func (s *ProductSnapshot) Scan(value any) error {
	if value == nil {
		*s = ProductSnapshot{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ProductSnapshot", value)
	}
	return json.Unmarshal(data, s)
}

// OrderItem represents a line item in an order.
// The SKU is stored by value, not as a relation to the catalog: the snapshot
// and price columns carry everything the order needs about the product.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Sku       string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Qty       int             `gorm:"not null;default:1"`
	Snapshot  ProductSnapshot `gorm:"type:jsonb;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a new order item from a resolved product snapshot.
// Price is copied from the snapshot so it stays frozen even if the catalog
// product changes later.
func NewOrderItem(orderID uuid.UUID, qty int, snapshot ProductSnapshot) (*OrderItem, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if snapshot.Sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if qty <= 0 {
		return nil, shared.NewDomainError("INVALID_QTY", "Quantity must be positive")
	}

	now := time.Now()
	return &OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		Sku:       snapshot.Sku,
		Qty:       qty,
		Snapshot:  snapshot,
		Price:     snapshot.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Subtotal returns price * qty for the item
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Order represents an order aggregate root.
// The user it belongs to is an external aggregate referenced by ID only.
// Orders are soft-deleted: logically removed but retained for audit.
type Order struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Code      string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status    OrderStatus    `gorm:"type:varchar(20);not null;default:'created'"`
	Items     []OrderItem    `gorm:"foreignKey:OrderID"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order in the initial status.
// An empty status defaults to "created"; any other status must be valid.
func NewOrder(userID uuid.UUID, code string, status OrderStatus) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Order code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Order code cannot exceed 50 characters")
	}
	if status == "" {
		status = OrderStatusCreated
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", status))
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Code:              code,
		Status:            status,
		Items:             make([]OrderItem, 0),
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// ItemCount returns the number of items in the order
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// TotalAmount returns the sum of all item subtotals
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// GetItemBySku returns an item by its SKU, or nil when absent
func (o *Order) GetItemBySku(sku string) *OrderItem {
	for idx := range o.Items {
		if o.Items[idx].Sku == sku {
			return &o.Items[idx]
		}
	}
	return nil
}
