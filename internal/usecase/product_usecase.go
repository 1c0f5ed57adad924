package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

const (
	DefaultListLimit  = 10
	DefaultListOffset = 0

	unexpectedErrorMessage = "Unexpected error, check server logs"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	txm         repo.TransactionManager
	cache       repo.ProductListCache
	events      repo.ProductEventPublisher
	logger      zerolog.Logger
	now         func() time.Time
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	txm repo.TransactionManager,
	cache repo.ProductListCache,
	events repo.ProductEventPublisher,
	logger zerolog.Logger,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		txm:         txm,
		cache:       cache,
		events:      events,
		logger:      logger.With().Str("component", "ProductUsecase").Logger(),
		now:         time.Now,
	}
}

// レスポンス用。画像はURLの配列にする。
type ProductOutput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description *string  `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

func NewProductOutput(p model.Product) ProductOutput {
	return ProductOutput{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Slug:        p.Slug,
		Stock:       p.Stock,
		Sizes:       nonNil(p.Sizes),
		Gender:      string(p.Gender),
		Tags:        nonNil(p.Tags),
		Images:      p.ImageURLs(),
	}
}

// POST /products の入力
type CreateProductInput struct {
	Title       string
	Price       *float64
	Description *string
	Slug        *string
	Stock       *int
	Sizes       []string
	Gender      string
	Tags        []string
	Images      []string
}

// PATCH /products/:id の入力。nilは「変更なし」。
// Imagesは空配列でも指定されていれば画像を全部入れ替える。
type UpdateProductInput struct {
	Title       *string
	Price       *float64
	Description *string
	// descriptionをnullに戻す
	ClearDescription bool
	Slug             *string
	Stock            *int
	Sizes            []string
	Gender           *string
	Tags             []string
	Images           []string
}

// GET /products の入力。nilはデフォルト値。
type ListProductsInput struct {
	Limit  *int
	Offset *int
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (ProductOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "title required")
	}
	if in.Price != nil && *in.Price < 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if !model.IsValidGender(in.Gender) {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid gender")
	}

	p := model.Product{
		Title:       in.Title,
		Description: in.Description,
		Sizes:       pq.StringArray(nonNil(in.Sizes)),
		Gender:      model.Gender(in.Gender),
		Tags:        pq.StringArray(nonNil(in.Tags)),
		Images:      model.NewProductImages(in.Images),
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}

	if err := u.productRepo.Create(ctx, &p); err != nil {
		return ProductOutput{}, u.handleDBError(err)
	}

	u.afterWrite(ctx, model.ProductEventCreated, p)
	return NewProductOutput(p), nil
}

func (u *ProductUsecase) FindAll(ctx context.Context, in ListProductsInput) ([]ProductOutput, error) {
	q := repo.ProductListQuery{Limit: DefaultListLimit, Offset: DefaultListOffset}
	if in.Limit != nil {
		if *in.Limit < 1 {
			return nil, NewHTTPError(http.StatusBadRequest, "limit must be a positive number")
		}
		q.Limit = *in.Limit
	}
	if in.Offset != nil {
		if *in.Offset < 0 {
			return nil, NewHTTPError(http.StatusBadRequest, "offset must not be less than 0")
		}
		q.Offset = *in.Offset
	}

	cached, cacheErr := u.cache.GetList(ctx, q)
	if cacheErr != nil {
		u.logger.Warn().Err(cacheErr).Msg("product list cache read failed")
	}
	if cached.Hit {
		return toOutputs(cached.Products), nil
	}

	items, err := u.productRepo.List(ctx, q)
	if err != nil {
		return nil, u.handleDBError(err)
	}

	// 世代が分からないときは書かない
	if cacheErr == nil {
		if err := u.cache.SetList(ctx, q, cached.Gen, items); err != nil {
			u.logger.Warn().Err(err).Msg("product list cache write failed")
		}
	}
	return toOutputs(items), nil
}

// termがUUIDならid、それ以外はtitle（大文字小文字無視）かslugで探す
func (u *ProductUsecase) FindOne(ctx context.Context, term string) (model.Product, error) {
	var (
		p   model.Product
		err error
	)
	if IsUUID(term) {
		p, err = u.productRepo.FindByID(ctx, term)
	} else {
		p, err = u.productRepo.FindByTitleOrSlug(ctx, strings.ToUpper(term), strings.ToLower(term))
	}
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product with %s not found", term))
	}
	if err != nil {
		return model.Product{}, u.handleDBError(err)
	}
	return p, nil
}

func (u *ProductUsecase) FindOnePlain(ctx context.Context, term string) (ProductOutput, error) {
	p, err := u.FindOne(ctx, term)
	if err != nil {
		return ProductOutput{}, err
	}
	return NewProductOutput(p), nil
}

// 画像が指定されたら、トランザクション内で既存画像を消して作り直す
func (u *ProductUsecase) Update(ctx context.Context, id string, in UpdateProductInput) (ProductOutput, error) {
	if !IsUUID(id) {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "Validation failed (uuid is expected)")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "title must not be empty")
	}
	if in.Price != nil && *in.Price < 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if in.Gender != nil && !model.IsValidGender(*in.Gender) {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid gender")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product with id %s not found", id))
	}
	if err != nil {
		return ProductOutput{}, u.handleDBError(err)
	}

	in.applyTo(&p)

	err = u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if in.Images != nil {
			if err := r.ProductImages().DeleteByProductID(ctx, p.ID); err != nil {
				return err
			}
			p.Images = model.NewProductImages(in.Images)
		}
		return r.Products().Save(ctx, &p)
	})
	if err != nil {
		return ProductOutput{}, u.handleDBError(err)
	}

	u.afterWrite(ctx, model.ProductEventUpdated, p)
	return u.FindOnePlain(ctx, id)
}

func (u *ProductUsecase) Remove(ctx context.Context, id string) error {
	if !IsUUID(id) {
		return NewHTTPError(http.StatusBadRequest, "Validation failed (uuid is expected)")
	}

	p, err := u.FindOne(ctx, id)
	if err != nil {
		return err
	}

	err = u.productRepo.Delete(ctx, p.ID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product with %s not found", id))
	}
	if err != nil {
		return u.handleDBError(err)
	}

	u.afterWrite(ctx, model.ProductEventDeleted, p)
	return nil
}

// 全商品を削除（画像はcascade）
func (u *ProductUsecase) DeleteAllProducts(ctx context.Context) error {
	if err := u.productRepo.DeleteAll(ctx); err != nil {
		return u.handleDBError(err)
	}
	u.afterWrite(ctx, model.ProductEventPurged, model.Product{})
	return nil
}

// DB疎通確認
func (u *ProductUsecase) Health(ctx context.Context) error {
	return u.productRepo.Ping(ctx)
}

func (in UpdateProductInput) applyTo(p *model.Product) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.ClearDescription {
		p.Description = nil
	} else if in.Description != nil {
		p.Description = in.Description
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Sizes != nil {
		p.Sizes = pq.StringArray(in.Sizes)
	}
	if in.Gender != nil {
		p.Gender = model.Gender(*in.Gender)
	}
	if in.Tags != nil {
		p.Tags = pq.StringArray(in.Tags)
	}
}

// unique違反は400、それ以外はログを出して500
func (u *ProductUsecase) handleDBError(err error) error {
	if de, ok := repo.AsDuplicateError(err); ok {
		msg := de.Detail
		if msg == "" {
			msg = "duplicate value"
		}
		return NewHTTPError(http.StatusBadRequest, msg)
	}
	if he, ok := AsHTTPError(err); ok {
		return he
	}

	u.logger.Error().Err(err).Msg("database error")
	return NewHTTPError(http.StatusInternalServerError, unexpectedErrorMessage)
}

// 書き込み後：一覧キャッシュを消してイベントを送る。失敗してもリクエストは成功扱い。
func (u *ProductUsecase) afterWrite(ctx context.Context, typ model.ProductEventType, p model.Product) {
	if err := u.cache.Invalidate(ctx); err != nil {
		u.logger.Warn().Err(err).Msg("product list cache invalidate failed")
	}

	e := model.ProductEvent{
		Type:       typ,
		ProductID:  p.ID,
		Slug:       p.Slug,
		OccurredAt: u.now().UTC(),
	}
	if err := u.events.Publish(ctx, e); err != nil {
		u.logger.Warn().Err(err).
			Str("event", string(typ)).
			Str("product_id", p.ID).
			Msg("product event publish failed")
	}
}

// 36文字のUUID表記だけを受け付ける
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func toOutputs(items []model.Product) []ProductOutput {
	out := make([]ProductOutput, 0, len(items))
	for _, p := range items {
		out = append(out, NewProductOutput(p))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
