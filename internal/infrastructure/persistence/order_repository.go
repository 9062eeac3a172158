package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/sales"
	"github.com/shopcore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// FindByID finds an order by its ID, including its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Order, error) {
	var order sales.Order
	if err := r.conn(ctx).WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByCode finds an order by its code, including its items
func (r *GormOrderRepository) FindByCode(ctx context.Context, code string) (*sales.Order, error) {
	var order sales.Order
	if err := r.conn(ctx).WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		Where("code = ?", code).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all orders matching the filter. Items are not loaded.
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Order, error) {
	var orders []sales.Order
	query := applyFilter(r.conn(ctx).WithContext(ctx).Model(&sales.Order{}), filter, orderSearchColumns, OrderSortFields)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.conn(ctx).WithContext(ctx).Model(&sales.Order{}), filter, orderSearchColumns)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an order header. Items are persisted through
// OrderItemRepository so the service controls the skip policy. A
// unique-constraint rejection on the code column is mapped to
// sales.ErrDuplicateCode.
func (r *GormOrderRepository) Save(ctx context.Context, order *sales.Order) error {
	if err := r.conn(ctx).WithContext(ctx).Omit("Items").Save(order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return sales.ErrDuplicateCode
		}
		return err
	}
	return nil
}

// Delete soft-deletes an order
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).WithContext(ctx).Delete(&sales.Order{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var orderSearchColumns = []string{"code"}

// Ensure GormOrderRepository implements OrderRepository
var _ sales.OrderRepository = (*GormOrderRepository)(nil)
