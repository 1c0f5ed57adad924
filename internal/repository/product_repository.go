package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// unique制約違反。DetailはDBが返したメッセージ。
type DuplicateError struct {
	Detail string
	Err    error
}

func (e *DuplicateError) Error() string {
	if e.Detail != "" {
		return "duplicate key: " + e.Detail
	}
	return "duplicate key"
}

func (e *DuplicateError) Unwrap() error { return e.Err }

func AsDuplicateError(err error) (*DuplicateError, bool) {
	var de *DuplicateError
	ok := errors.As(err, &de)
	return de, ok
}

// 一覧のページング
type ProductListQuery struct {
	Limit  int
	Offset int
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	// titleは大文字小文字を無視、slugは完全一致
	FindByTitleOrSlug(ctx context.Context, title string, slug string) (model.Product, error)

	Create(ctx context.Context, p *model.Product) error
	Save(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error

	Ping(ctx context.Context) error
}

// 画像は商品が所有するので商品ID単位で消す
type ProductImageRepository interface {
	DeleteByProductID(ctx context.Context, productID string) error
}
