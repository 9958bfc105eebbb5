package mysql

import (
	"context"

	productDomain "loan-origination/internal/domain/product"

	"gorm.io/gorm"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) ListByFlow(ctx context.Context, flow productDomain.FlowType) ([]productDomain.Product, error) {
	var out []productDomain.Product
	res := r.db.WithContext(ctx).
		Where("flow_type = ?", flow).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// Seed fills an empty products table with the default catalog; a non-empty
// table is left alone.
func (r *ProductRepository) Seed(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&productDomain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	products := productDomain.DefaultCatalog()
	return r.db.WithContext(ctx).Create(&products).Error
}
