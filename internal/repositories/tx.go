package repositories

import (
	"context"

	"gorm.io/gorm"
)

// TxRunner runs a function inside one store transaction. Every public
// operation that touches more than one row goes through it, so a partial
// failure rolls back everything the operation wrote.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

func NewTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) RunInTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
