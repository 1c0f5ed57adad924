package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 画像付きでページングして返す。並びはtitle順で固定。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		Order("title asc").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, translateError(err)
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return model.Product{}, translateError(err)
	}
	return p, nil
}

// UPPER(title) か slug で1件取得
func (r *ProductGormRepository) FindByTitleOrSlug(ctx context.Context, title string, slug string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		Where("UPPER(title) = ? OR slug = ?", title, slug).
		First(&p).Error
	if err != nil {
		return model.Product{}, translateError(err)
	}
	return p, nil
}

// 商品の作成（画像も一緒にinsertされる）
func (r *ProductGormRepository) Create(ctx context.Context, p *model.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// 商品の保存。Imagesに未採番のものがあればinsertされる。
func (r *ProductGormRepository) Save(ctx context.Context, p *model.Product) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// 商品削除。画像はFKのON DELETE CASCADEで消える。
func (r *ProductGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 全件削除（seed用）
func (r *ProductGormRepository) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Product{}).Error
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *ProductGormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// 画像は登録順
func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("product_images.id asc")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
