package main

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/application/seed"
	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/store"
	"github.com/xiebiao/bookcatalog/pkg/mq"
)

// App 组装完成的应用
type App struct {
	Engine *gin.Engine
	Store  *store.Store
	Seeder *seed.Loader
}

func newApp(engine *gin.Engine, s *store.Store, seeder *seed.Loader) *App {
	return &App{Engine: engine, Store: s, Seeder: seeder}
}

// SeedIfFresh 新建的存储导入种子数据
// 种子文件读取/解析失败或导入中止时只记录日志,服务照常启动
func (a *App) SeedIfFresh(ctx context.Context, cfg config.SeedConfig) {
	if !a.Store.Fresh || !cfg.Enabled {
		return
	}

	report, err := a.Seeder.LoadFile(ctx, cfg.Path)
	if err != nil {
		slog.Error("seed load aborted", "path", cfg.Path, "loaded", report.Loaded, "error", err)
		return
	}
	slog.Info("seed loaded", "path", cfg.Path, "loaded", report.Loaded, "skipped", report.Skipped)
}

// ========================================
// Custom Providers
// ========================================

// provideStore 打开存储,cleanup时关闭连接
func provideStore(cfg *config.Config) (*store.Store, func(), error) {
	s, err := store.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := s.Close(); err != nil {
			slog.Warn("close store failed", "error", err)
		}
	}
	return s, cleanup, nil
}

// provideNameCache 未启用Redis时返回nil,仓储不加缓存
// 缓存键带上存储标识,重建数据库后不会读到旧ID
func provideNameCache(cfg *config.Config, s *store.Store) (*redis.NameCache, func(), error) {
	if !cfg.Redis.Enabled {
		return nil, func() {}, nil
	}

	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { closeRedis(client) }
	return redis.NewNameCache(client, cfg.Redis.NameTTL, s.Generation), cleanup, nil
}

func closeRedis(client *goredis.Client) {
	if err := client.Close(); err != nil {
		slog.Warn("close redis failed", "error", err)
	}
}

// provideAuthorRepository 作者仓储(可选Redis名称缓存)
func provideAuthorRepository(s *store.Store, cache *redis.NameCache) author.Repository {
	repo := store.NewAuthorRepository(s)
	if cache == nil {
		return repo
	}
	return redis.NewCachedAuthorRepository(repo, cache)
}

// providePublisherRepository 出版社仓储(可选Redis名称缓存)
func providePublisherRepository(s *store.Store, cache *redis.NameCache) publisher.Repository {
	repo := store.NewPublisherRepository(s)
	if cache == nil {
		return repo
	}
	return redis.NewCachedPublisherRepository(repo, cache)
}

// provideEventPublisher 启用消息队列时发布到RabbitMQ,否则丢弃事件
func provideEventPublisher(cfg *config.Config) (appbook.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return appbook.NopPublisher{}, func() {}, nil
	}

	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := p.Close(); err != nil {
			slog.Warn("close publisher failed", "error", err)
		}
	}
	return p, cleanup, nil
}
