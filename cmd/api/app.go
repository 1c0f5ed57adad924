package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog/internal/config"
	"catalog/internal/infra/cache"
	"catalog/internal/infra/db"
	"catalog/internal/infra/event"
	infraRepo "catalog/internal/infra/repository"
	"catalog/internal/logger"
	repo "catalog/internal/repository"
	"catalog/internal/usecase"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// コマンド共通の依存
type app struct {
	cfg    config.Config
	logger zerolog.Logger
	db     *gorm.DB

	products *usecase.ProductUsecase
	seed     *usecase.SeedUsecase

	closers []func() error
}

func newApp(envFile string, configFile string) (*app, error) {
	cfg, err := config.Load(envFile, configFile)
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.LogLevel, cfg.IsDev())

	//DB接続
	gormDB, err := db.Connect(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: log, db: gormDB}
	a.closers = append(a.closers, func() error { return db.Close(gormDB) })

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//一覧キャッシュ（REDIS_ADDRが無ければ無効）
	var listCache repo.ProductListCache = cache.NopProductListCache{}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, list cache will miss")
		}
		cancel()
		listCache = cache.NewProductListRedisCache(rdb, cfg.Redis.TTL)
		a.closers = append(a.closers, rdb.Close)
	}

	//商品イベント（KAFKA_BROKERSが無ければ無効）
	var publisher repo.ProductEventPublisher = event.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		p := event.NewProductKafkaPublisher(event.NewKafkaWriter(cfg.Kafka), cfg.Kafka.Timeout)
		publisher = p
		a.closers = append(a.closers, p.Close)
	}

	//Usecase生成
	a.products = usecase.NewProductUsecase(productRepo, txm, listCache, publisher, log)
	a.seed = usecase.NewSeedUsecase(a.products, nil)

	return a, nil
}

func (a *app) migrate() error {
	if err := db.AutoMigrate(a.db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	a.logger.Info().Msg("schema migrated")
	return nil
}

// 後に開いたものから閉じる
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
