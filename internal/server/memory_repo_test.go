package server_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"
)

// テスト用のインメモリ実装。gormのhookとunique制約をまねる。
type memoryRepo struct {
	mu      sync.Mutex
	items   map[string]model.Product
	nextImg int64
	pingErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: map[string]model.Product{}}
}

func (r *memoryRepo) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]model.Product, 0, len(r.items))
	for _, p := range r.items {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Title < all[j].Title })

	if q.Offset >= len(all) {
		return []model.Product{}, nil
	}
	end := q.Offset + q.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[q.Offset:end], nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *memoryRepo) FindByTitleOrSlug(ctx context.Context, title string, slug string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.items {
		if strings.ToUpper(p.Title) == title || p.Slug == slug {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *memoryRepo) Create(ctx context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_ = p.BeforeCreate(nil)
	_ = p.BeforeSave(nil)
	if err := r.checkUnique(p); err != nil {
		return err
	}
	r.store(p)
	return nil
}

func (r *memoryRepo) Save(ctx context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_ = p.BeforeSave(nil)
	if err := r.checkUnique(p); err != nil {
		return err
	}
	r.store(p)
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memoryRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = map[string]model.Product{}
	return nil
}

func (r *memoryRepo) Ping(ctx context.Context) error { return r.pingErr }

func (r *memoryRepo) DeleteByProductID(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.items[productID]; ok {
		p.Images = nil
		r.items[productID] = p
	}
	return nil
}

func (r *memoryRepo) Products() repo.ProductRepository           { return r }
func (r *memoryRepo) ProductImages() repo.ProductImageRepository { return r }

func (r *memoryRepo) WithinTx(ctx context.Context, fn func(repo.TxRepos) error) error {
	return fn(r)
}

func (r *memoryRepo) checkUnique(p *model.Product) error {
	for id, other := range r.items {
		if id == p.ID {
			continue
		}
		if other.Title == p.Title {
			return &repo.DuplicateError{Detail: fmt.Sprintf("Key (title)=(%s) already exists.", p.Title)}
		}
		if other.Slug == p.Slug {
			return &repo.DuplicateError{Detail: fmt.Sprintf("Key (slug)=(%s) already exists.", p.Slug)}
		}
	}
	return nil
}

func (r *memoryRepo) store(p *model.Product) {
	for i := range p.Images {
		if p.Images[i].ID == 0 {
			r.nextImg++
			p.Images[i].ID = r.nextImg
		}
		p.Images[i].ProductID = p.ID
	}

	cp := *p
	cp.Images = append([]model.ProductImage(nil), p.Images...)
	r.items[p.ID] = cp
}
