package sales

import (
	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
)

// Event types for the sales context
const (
	EventTypeOrderCreated = "sales.order.created"
)

// OrderCreatedEvent is emitted when a new order is created
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Code   string    `json:"code"`
	Status string    `json:"status"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, "Order", order.ID),
		UserID:          order.UserID,
		Code:            order.Code,
		Status:          order.Status.String(),
	}
}
