package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const SeedExecutedMessage = "SEED EXECUTED"

// seedのinsert同時実行数
const seedConcurrency = 4

type SeedUsecase struct {
	products *ProductUsecase
	fixtures []CreateProductInput
}

// DI。fixturesがnilならInitialProductsを使う。
func NewSeedUsecase(products *ProductUsecase, fixtures []CreateProductInput) *SeedUsecase {
	if fixtures == nil {
		fixtures = InitialProducts()
	}
	return &SeedUsecase{products: products, fixtures: fixtures}
}

// 全商品を消してから固定データを入れ直す
func (u *SeedUsecase) RunSeed(ctx context.Context) (string, error) {
	if err := u.products.DeleteAllProducts(ctx); err != nil {
		return "", err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seedConcurrency)
	for _, in := range u.fixtures {
		g.Go(func() error {
			_, err := u.products.Create(gctx, in)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return SeedExecutedMessage, nil
}
