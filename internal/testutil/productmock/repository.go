package productmock

import (
	"context"
	"errors"

	domain "sacco-backoffice/internal/domain/product"
)

var errUnimplemented = errors.New("productmock: method not implemented")

// Repo is a function-backed mock that satisfies product.Repository.
type Repo struct {
	GetByIDFn         func(ctx context.Context, id uint64) (*domain.Product, error)
	GetActiveByNameFn func(ctx context.Context, name string) (*domain.Product, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetActiveByName(ctx context.Context, name string) (*domain.Product, error) {
	if m.GetActiveByNameFn != nil {
		return m.GetActiveByNameFn(ctx, name)
	}
	return nil, errUnimplemented
}
