package repository

import (
	"context"

	"catalog/internal/domain/model"

	"gorm.io/gorm"
)

type ProductImageGormRepository struct {
	db *gorm.DB
}

func NewProductImageGormRepository(db *gorm.DB) *ProductImageGormRepository {
	return &ProductImageGormRepository{db: db}
}

// 商品に紐づく画像を全部消す
func (r *ProductImageGormRepository) DeleteByProductID(ctx context.Context, productID string) error {
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductImage{}).Error
	if err != nil {
		return translateError(err)
	}
	return nil
}
