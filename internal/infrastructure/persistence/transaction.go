package persistence

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key under which an open transaction travels
type txKey struct{}

// GormTransactionManager runs units of work on a gorm transaction carried in
// the context. Repositories created from the same *gorm.DB pick the
// transaction up via dbFromContext, so a service can span several
// repositories in one atomic unit without knowing about gorm.
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a new GormTransactionManager
func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

// RunInTransaction executes fn inside one transaction. The transaction is
// committed when fn returns nil and rolled back otherwise. Nested calls
// reuse the enclosing transaction.
func (m *GormTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext returns the transaction carried in ctx, or fallback when no
// transaction is open.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback
}
