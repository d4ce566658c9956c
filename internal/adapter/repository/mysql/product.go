package mysql

import (
	"context"

	"gorm.io/gorm"

	productDomain "sacco-backoffice/internal/domain/product"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*productDomain.Product, error) {
	var out productDomain.Product
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ProductRepository) GetActiveByName(ctx context.Context, name string) (*productDomain.Product, error) {
	var out productDomain.Product
	res := r.db.WithContext(ctx).Where("name = ? AND is_active = ?", name, true).First(&out)
	return &out, res.Error
}
