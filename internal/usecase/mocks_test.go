package usecase_test

import (
	"context"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"github.com/stretchr/testify/mock"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByTitleOrSlug(ctx context.Context, title string, slug string) (model.Product, error) {
	args := m.Called(ctx, title, slug)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Save(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ProductRepoMock) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type ProductImageRepoMock struct{ mock.Mock }

func (m *ProductImageRepoMock) DeleteByProductID(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// WithinTxはfnをそのまま呼ぶ（commit/rollbackはしない）
type TxManagerMock struct {
	mock.Mock
	products repo.ProductRepository
	images   repo.ProductImageRepository
}

type txReposMock struct {
	products repo.ProductRepository
	images   repo.ProductImageRepository
}

func (r *txReposMock) Products() repo.ProductRepository           { return r.products }
func (r *txReposMock) ProductImages() repo.ProductImageRepository { return r.images }

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(&txReposMock{products: m.products, images: m.images})
}

type ListCacheMock struct{ mock.Mock }

func (m *ListCacheMock) GetList(ctx context.Context, q repo.ProductListQuery) (repo.CachedProductList, error) {
	args := m.Called(ctx, q)
	cached, _ := args.Get(0).(repo.CachedProductList)
	return cached, args.Error(1)
}

func (m *ListCacheMock) SetList(ctx context.Context, q repo.ProductListQuery, gen int64, products []model.Product) error {
	args := m.Called(ctx, q, gen, products)
	return args.Error(0)
}

func (m *ListCacheMock) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(ctx context.Context, e model.ProductEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

var (
	_ repo.ProductRepository      = (*ProductRepoMock)(nil)
	_ repo.ProductImageRepository = (*ProductImageRepoMock)(nil)
	_ repo.TransactionManager     = (*TxManagerMock)(nil)
	_ repo.ProductListCache       = (*ListCacheMock)(nil)
	_ repo.ProductEventPublisher  = (*PublisherMock)(nil)
)
