package repository

import (
	"context"

	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products      repo.ProductRepository
	productImages repo.ProductImageRepository
}

func (r *txReposGorm) Products() repo.ProductRepository           { return r.products }
func (r *txReposGorm) ProductImages() repo.ProductImageRepository { return r.productImages }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがerrorを返したらrollback
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:      NewProductGormRepository(tx),
			productImages: NewProductImageGormRepository(tx),
		}
		return fn(r)
	})
}
