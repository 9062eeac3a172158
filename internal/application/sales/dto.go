package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents a request to create a new order.
// Code and Status are optional: an absent code is generated, an absent status
// defaults to created. Items reference products by SKU; unresolvable SKUs are
// skipped, they do not fail the order.
type CreateOrderRequest struct {
	UserID uuid.UUID                `json:"user_id" binding:"required"`
	Code   string                   `json:"code" binding:"omitempty,max=50"`
	Status string                   `json:"status" binding:"omitempty,oneof=created paid fraud packed shipped delivered finished canceled"`
	Items  []CreateOrderItemRequest `json:"items" binding:"omitempty,dive"`
}

// CreateOrderItemRequest represents one requested order line
type CreateOrderItemRequest struct {
	Sku string `json:"sku" binding:"required,min=1,max=50,sku"`
	Qty int    `json:"qty" binding:"omitempty,min=1"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"user_id"`
	Code      string              `json:"code"`
	Status    string              `json:"status"`
	Items     []OrderItemResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID       uuid.UUID             `json:"id"`
	Sku      string                `json:"sku"`
	Qty      int                   `json:"qty"`
	Price    decimal.Decimal       `json:"price"`
	Subtotal decimal.Decimal       `json:"subtotal"`
	Snapshot sales.ProductSnapshot `json:"snapshot"`
}

// OrderListFilter represents filter options for order list
type OrderListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=created paid fraud packed shipped delivered finished canceled"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *sales.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = ToOrderItemResponse(&o.Items[i])
	}
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Code:      o.Code,
		Status:    string(o.Status),
		Items:     items,
		Total:     o.TotalAmount(),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// ToOrderItemResponse converts a domain OrderItem to OrderItemResponse
func ToOrderItemResponse(item *sales.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:       item.ID,
		Sku:      item.Sku,
		Qty:      item.Qty,
		Price:    item.Price,
		Subtotal: item.Subtotal(),
		Snapshot: item.Snapshot,
	}
}

// ToOrderResponses converts a slice of domain Orders to responses
func ToOrderResponses(orders []sales.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
