package repository

import (
	"context"

	"catalog/internal/domain/model"
)

// 一覧キャッシュの読み出し結果。GenはSetListにそのまま渡す。
type CachedProductList struct {
	Products []model.Product
	Hit      bool
	Gen      int64
}

// 一覧ページのキャッシュ。Invalidateで世代が進み、古い世代のSetListは読まれない。
type ProductListCache interface {
	GetList(ctx context.Context, q ProductListQuery) (CachedProductList, error)
	SetList(ctx context.Context, q ProductListQuery, gen int64, products []model.Product) error
	Invalidate(ctx context.Context) error
}

// 商品の変更を外部へ通知する
type ProductEventPublisher interface {
	Publish(ctx context.Context, event model.ProductEvent) error
}
