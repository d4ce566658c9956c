package product

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*Product, error)
	GetActiveByName(ctx context.Context, name string) (*Product, error)
}
