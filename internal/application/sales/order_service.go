package sales

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/sales"
	"github.com/shopcore/backend/internal/domain/shared"
)

// maxCodeAttempts bounds how many times a generated order code is retried
// after a duplicate-code rejection before giving up.
const maxCodeAttempts = 3

// TransactionManager runs a function inside one storage transaction. The
// transaction travels in the context handed to fn, so repositories called
// with that context participate in the same unit of work.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo     sales.OrderRepository
	itemRepo      sales.OrderItemRepository
	productLookup sales.ProductLookup
	txManager     TransactionManager
	codeGen       *sales.CodeGenerator
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo sales.OrderRepository,
	itemRepo sales.OrderItemRepository,
	productLookup sales.ProductLookup,
	txManager TransactionManager,
	codeGen *sales.CodeGenerator,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		itemRepo:      itemRepo,
		productLookup: productLookup,
		txManager:     txManager,
		codeGen:       codeGen,
	}
}

// Create creates a new order with its items in one transaction.
//
// Items whose SKU resolves to no product are skipped; the order still
// succeeds, possibly with zero items. Any other failure rolls the whole
// unit of work back. When the code was generated here, a duplicate-code
// rejection triggers regeneration; a caller-supplied duplicate code fails
// immediately.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	status := sales.OrderStatus(req.Status)
	generated := req.Code == ""

	var created *sales.Order
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := req.Code
		if generated {
			code = s.codeGen.Generate()
		}

		err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			order, err := sales.NewOrder(req.UserID, code, status)
			if err != nil {
				return err
			}
			if err := s.orderRepo.Save(txCtx, order); err != nil {
				return err
			}

			for _, line := range req.Items {
				detail, err := s.productLookup.FindProductBySku(txCtx, strings.ToUpper(line.Sku))
				if err != nil {
					return err
				}
				if detail == nil {
					// Unknown SKU: drop the line, keep the order.
					continue
				}

				qty := line.Qty
				if qty <= 0 {
					qty = 1
				}
				item, err := sales.NewOrderItem(order.ID, qty, detail.Snapshot())
				if err != nil {
					return err
				}
				if err := s.itemRepo.Save(txCtx, item); err != nil {
					return err
				}
				order.Items = append(order.Items, *item)
			}

			created = order
			return nil
		})
		if err == nil {
			response := ToOrderResponse(created)
			return &response, nil
		}
		if !errors.Is(err, sales.ErrDuplicateCode) || !generated {
			return nil, err
		}
	}

	return nil, sales.ErrDuplicateCode
}

// GetByID retrieves an order by ID, including its items
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByCode retrieves an order by its code, including its items
func (s *OrderService) GetByCode(ctx context.Context, code string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves a list of orders with filtering and pagination.
// Items are not loaded for list views.
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// Delete soft-deletes an order
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	return s.orderRepo.Delete(ctx, orderID)
}
