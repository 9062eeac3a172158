package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/sales"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCode(ctx context.Context, code string) (*sales.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *sales.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderItemRepository is a mock implementation of OrderItemRepository
type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]sales.OrderItem, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]sales.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderItemRepository) Save(ctx context.Context, item *sales.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// MockProductLookup is a mock implementation of the ProductLookup port
type MockProductLookup struct {
	mock.Mock
}

func (m *MockProductLookup) FindProductBySku(ctx context.Context, sku string) (*sales.ProductDetail, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.ProductDetail), args.Error(1)
}

// passthroughTxManager runs the unit of work on the caller's context,
// counting invocations. Rollback semantics are covered by the persistence
// tests; here an error from fn is simply surfaced.
type passthroughTxManager struct {
	calls int
}

func (f *passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func sequenceRandom(values ...string) func(n int) string {
	i := 0
	return func(n int) string {
		v := values[i%len(values)]
		i++
		return v
	}
}

func testCodeGen(suffixes ...string) *sales.CodeGenerator {
	fixed := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	return sales.NewCodeGenerator(
		sales.WithClock(func() time.Time { return fixed }),
		sales.WithRandom(sequenceRandom(suffixes...)),
	)
}

func detail(sku string, price int64) *sales.ProductDetail {
	return &sales.ProductDetail{
		ID:    uuid.New(),
		Sku:   sku,
		Name:  sku + " product",
		Price: decimal.NewFromInt(price),
	}
}

type orderServiceFixture struct {
	orderRepo *MockOrderRepository
	itemRepo  *MockOrderItemRepository
	lookup    *MockProductLookup
	tx        *passthroughTxManager
	service   *OrderService
}

func newOrderServiceFixture(suffixes ...string) *orderServiceFixture {
	f := &orderServiceFixture{
		orderRepo: new(MockOrderRepository),
		itemRepo:  new(MockOrderItemRepository),
		lookup:    new(MockProductLookup),
		tx:        &passthroughTxManager{},
	}
	if len(suffixes) == 0 {
		suffixes = []string{"AAAAAAA"}
	}
	f.service = NewOrderService(f.orderRepo, f.itemRepo, f.lookup, f.tx, testCodeGen(suffixes...))
	return f
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("skips unresolvable SKUs and keeps the rest in request order", func(t *testing.T) {
		f := newOrderServiceFixture()

		f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Order")).Return(nil)
		f.lookup.On("FindProductBySku", mock.Anything, "KNOWN-1").Return(detail("KNOWN-1", 10), nil)
		f.lookup.On("FindProductBySku", mock.Anything, "GHOST").Return(nil, nil)
		f.lookup.On("FindProductBySku", mock.Anything, "KNOWN-2").Return(detail("KNOWN-2", 20), nil)
		f.itemRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.OrderItem")).Return(nil)

		resp, err := f.service.Create(ctx, CreateOrderRequest{
			UserID: userID,
			Items: []CreateOrderItemRequest{
				{Sku: "KNOWN-1", Qty: 2},
				{Sku: "GHOST", Qty: 1},
				{Sku: "known-2"},
			},
		})
		require.NoError(t, err)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "KNOWN-1", resp.Items[0].Sku)
		assert.Equal(t, 2, resp.Items[0].Qty)
		assert.Equal(t, "KNOWN-2", resp.Items[1].Sku)
		assert.Equal(t, 1, resp.Items[1].Qty, "qty defaults to 1")
		assert.True(t, resp.Total.Equal(decimal.NewFromInt(40)))
		f.itemRepo.AssertNumberOfCalls(t, "Save", 2)
	})

	t.Run("defaults status to created and generates a code", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Order")).Return(nil)

		resp, err := f.service.Create(ctx, CreateOrderRequest{UserID: userID})
		require.NoError(t, err)
		assert.Equal(t, "created", resp.Status)
		assert.Equal(t, "ORD20260827AAAAAAA", resp.Code)
		assert.Empty(t, resp.Items, "zero-item order is a valid success")
		assert.True(t, resp.Total.IsZero())
	})

	t.Run("keeps a caller-supplied code and status", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Order")).Return(nil)

		resp, err := f.service.Create(ctx, CreateOrderRequest{
			UserID: userID,
			Code:   "CUSTOM-42",
			Status: "paid",
		})
		require.NoError(t, err)
		assert.Equal(t, "CUSTOM-42", resp.Code)
		assert.Equal(t, "paid", resp.Status)
	})

	t.Run("fails the whole unit of work when an item save fails", func(t *testing.T) {
		f := newOrderServiceFixture()

		dbErr := errors.New("disk full")
		f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Order")).Return(nil)
		f.lookup.On("FindProductBySku", mock.Anything, "KNOWN-1").Return(detail("KNOWN-1", 10), nil)
		f.itemRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.OrderItem")).Return(dbErr)

		_, err := f.service.Create(ctx, CreateOrderRequest{
			UserID: userID,
			Items:  []CreateOrderItemRequest{{Sku: "KNOWN-1"}},
		})
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 1, f.tx.calls)
	})

	t.Run("fails when product lookup errors", func(t *testing.T) {
		f := newOrderServiceFixture()

		lookupErr := errors.New("catalog unavailable")
		f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Order")).Return(nil)
		f.lookup.On("FindProductBySku", mock.Anything, "KNOWN-1").Return(nil, lookupErr)

		_, err := f.service.Create(ctx, CreateOrderRequest{
			UserID: userID,
			Items:  []CreateOrderItemRequest{{Sku: "KNOWN-1"}},
		})
		assert.ErrorIs(t, err, lookupErr)
	})

	t.Run("regenerates a colliding generated code", func(t *testing.T) {
		f := newOrderServiceFixture("AAAAAAA", "BBBBBBB")

		f.orderRepo.On("Save", mock.Anything, mock.MatchedBy(func(o *sales.Order) bool {
			return o.Code == "ORD20260827AAAAAAA"
		})).Return(sales.ErrDuplicateCode)
		f.orderRepo.On("Save", mock.Anything, mock.MatchedBy(func(o *sales.Order) bool {
			return o.Code == "ORD20260827BBBBBBB"
		})).Return(nil)

		resp, err := f.service.Create(ctx, CreateOrderRequest{UserID: userID})
		require.NoError(t, err)
		assert.Equal(t, "ORD20260827BBBBBBB", resp.Code)
		assert.Equal(t, 2, f.tx.calls)
	})

	t.Run("gives up after three generated-code collisions", func(t *testing.T) {
		f := newOrderServiceFixture("AAAAAAA", "BBBBBBB", "CCCCCCC")
		f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Order")).Return(sales.ErrDuplicateCode)

		_, err := f.service.Create(ctx, CreateOrderRequest{UserID: userID})
		assert.ErrorIs(t, err, sales.ErrDuplicateCode)
		assert.Equal(t, 3, f.tx.calls)
	})

	t.Run("does not retry a caller-supplied duplicate code", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*sales.Order")).Return(sales.ErrDuplicateCode)

		_, err := f.service.Create(ctx, CreateOrderRequest{UserID: userID, Code: "CUSTOM-42"})
		assert.ErrorIs(t, err, sales.ErrDuplicateCode)
		assert.Equal(t, 1, f.tx.calls)
	})

	t.Run("rejects an invalid user", func(t *testing.T) {
		f := newOrderServiceFixture()

		_, err := f.service.Create(ctx, CreateOrderRequest{UserID: uuid.Nil})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		f.orderRepo.AssertNotCalled(t, "Save")
	})
}

func TestOrderService_GetByID(t *testing.T) {
	ctx := context.Background()
	f := newOrderServiceFixture()

	order, err := sales.NewOrder(uuid.New(), "ORD20260827AAAAAAA", sales.OrderStatusCreated)
	require.NoError(t, err)

	f.orderRepo.On("FindByID", ctx, order.ID).Return(order, nil)
	f.orderRepo.On("FindByID", ctx, mock.AnythingOfType("uuid.UUID")).Return(nil, shared.ErrNotFound)

	resp, err := f.service.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Code, resp.Code)

	_, err = f.service.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()
	f := newOrderServiceFixture()

	first, err := sales.NewOrder(uuid.New(), "ORD20260827AAAAAAA", sales.OrderStatusCreated)
	require.NoError(t, err)

	f.orderRepo.On("FindAll", ctx, mock.MatchedBy(func(filter shared.Filter) bool {
		return filter.Page == 1 && filter.PageSize == 20 && filter.Filters["status"] == "created"
	})).Return([]sales.Order{*first}, nil)
	f.orderRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	responses, total, err := f.service.List(ctx, OrderListFilter{Status: "created"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, responses, 1)
	assert.Equal(t, "ORD20260827AAAAAAA", responses[0].Code)
}
