package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"catalog/internal/domain/model"
	repo "catalog/internal/repository"

	"github.com/go-redis/redis/v8"
)

const (
	listKeyPrefix = "products:list:"
	// listKeyPrefixに一致しない名前にする
	genKey = "products:listgen"
)

// findAllのページをRedisに置く
type ProductListRedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProductListRedisCache(rdb *redis.Client, ttl time.Duration) *ProductListRedisCache {
	return &ProductListRedisCache{rdb: rdb, ttl: ttl}
}

// products:list:<gen>:<limit>:<offset>
func listKey(gen int64, q repo.ProductListQuery) string {
	return fmt.Sprintf("%s%d:%d:%d", listKeyPrefix, gen, q.Limit, q.Offset)
}

// 現在の世代。未設定は0。
func (c *ProductListRedisCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *ProductListRedisCache) GetList(ctx context.Context, q repo.ProductListQuery) (repo.CachedProductList, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return repo.CachedProductList{}, err
	}

	raw, err := c.rdb.Get(ctx, listKey(gen, q)).Bytes()
	if errors.Is(err, redis.Nil) {
		return repo.CachedProductList{Gen: gen}, nil
	}
	if err != nil {
		return repo.CachedProductList{}, err
	}

	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return repo.CachedProductList{}, fmt.Errorf("decode cached list: %w", err)
	}
	return repo.CachedProductList{Products: products, Hit: true, Gen: gen}, nil
}

// genはGetListが返した世代。途中でInvalidateされていれば誰も読まないキーに入る。
func (c *ProductListRedisCache) SetList(ctx context.Context, q repo.ProductListQuery, gen int64, products []model.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(gen, q), raw, c.ttl).Err()
}

// 世代を進めてから古いページを消す
func (c *ProductListRedisCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, genKey).Err(); err != nil {
		return err
	}

	iter := c.rdb.Scan(ctx, 0, listKeyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// キャッシュ無効時
type NopProductListCache struct{}

func (NopProductListCache) GetList(ctx context.Context, q repo.ProductListQuery) (repo.CachedProductList, error) {
	return repo.CachedProductList{}, nil
}

func (NopProductListCache) SetList(ctx context.Context, q repo.ProductListQuery, gen int64, products []model.Product) error {
	return nil
}

func (NopProductListCache) Invalidate(ctx context.Context) error { return nil }
