package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
	"github.com/xiebiao/bookcatalog/pkg/circuitbreaker"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// NameCache 名称→ID缓存
// 设计说明：
// 1. 作者、出版社名称唯一且从不删除，同一个存储内缓存项不会失效，TTL只用于控制内存
// 2. Key设计：catalog:name:{generation}:{kind}:{name}，存储重建后generation变化，旧键不再被读取
// 3. 命中后仍按ID回查一次名称，对不上时当作未命中
// 4. Redis故障只记录日志并回源数据库，不影响请求
// 5. 连续失败后熔断，熔断期间直接跳过缓存（result=skipped）
type NameCache struct {
	client     *redis.Client
	ttl        time.Duration
	generation string
	breaker    *circuitbreaker.Breaker
}

// NewNameCache 创建名称缓存
// generation取自store.Store.Generation
func NewNameCache(client *redis.Client, ttl time.Duration, generation string) *NameCache {
	return &NameCache{
		client:     client,
		ttl:        ttl,
		generation: generation,
		breaker: circuitbreaker.New("redis-name-cache", circuitbreaker.Config{
			Interval: time.Minute,
			Timeout:  30 * time.Second,
			OnStateChange: func(name string, from, to circuitbreaker.State) {
				slog.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

func (c *NameCache) key(kind, name string) string {
	return fmt.Sprintf("catalog:name:%s:%s:%s", c.generation, kind, name)
}

// Get 读取缓存，第二个返回值表示是否命中
func (c *NameCache) Get(ctx context.Context, kind, name string) (uint, bool) {
	var id uint64
	hit := false
	err := c.breaker.Execute(func() error {
		v, err := c.client.Get(ctx, c.key(kind, name)).Uint64()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		id, hit = v, true
		return nil
	})

	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		countCache(kind, "skipped")
	case err != nil:
		countCache(kind, "error")
		slog.WarnContext(ctx, "name cache read failed", "kind", kind, "error", err)
	case hit:
		countCache(kind, "hit")
		return uint(id), true
	default:
		countCache(kind, "miss")
	}
	return 0, false
}

// Set 写入缓存
func (c *NameCache) Set(ctx context.Context, kind, name string, id uint) {
	err := c.breaker.Execute(func() error {
		return c.client.Set(ctx, c.key(kind, name), uint64(id), c.ttl).Err()
	})
	if err != nil && !errors.Is(err, circuitbreaker.ErrOpenState) {
		slog.WarnContext(ctx, "name cache write failed", "kind", kind, "error", err)
	}
}

func countCache(kind, result string) {
	metrics.IncCounterVec(metrics.NameCacheRequestsTotal, map[string]string{"kind": kind, "result": result})
}

// cachedAuthorRepository 在ResolveOrCreate前加一层缓存，其余方法直接透传
type cachedAuthorRepository struct {
	author.Repository
	cache *NameCache
}

// NewCachedAuthorRepository 包装作者仓储
func NewCachedAuthorRepository(inner author.Repository, cache *NameCache) author.Repository {
	return &cachedAuthorRepository{Repository: inner, cache: cache}
}

func (r *cachedAuthorRepository) ResolveOrCreate(ctx context.Context, name string) (uint, error) {
	if id, ok := r.cache.Get(ctx, "author", name); ok {
		a, err := r.Repository.FindByID(ctx, id)
		switch {
		case err == nil && a.Name == name:
			return id, nil
		case err != nil && !errors.Is(err, author.ErrAuthorNotFound):
			return 0, err
		}
		countCache("author", "stale")
	}
	id, err := r.Repository.ResolveOrCreate(ctx, name)
	if err != nil {
		return 0, err
	}
	r.cache.Set(ctx, "author", name, id)
	return id, nil
}

type cachedPublisherRepository struct {
	publisher.Repository
	cache *NameCache
}

// NewCachedPublisherRepository 包装出版社仓储
func NewCachedPublisherRepository(inner publisher.Repository, cache *NameCache) publisher.Repository {
	return &cachedPublisherRepository{Repository: inner, cache: cache}
}

func (r *cachedPublisherRepository) ResolveOrCreate(ctx context.Context, name string) (uint, error) {
	if id, ok := r.cache.Get(ctx, "publisher", name); ok {
		p, err := r.Repository.FindByID(ctx, id)
		switch {
		case err == nil && p.Name == name:
			return id, nil
		case err != nil && !errors.Is(err, publisher.ErrPublisherNotFound):
			return 0, err
		}
		countCache("publisher", "stale")
	}
	id, err := r.Repository.ResolveOrCreate(ctx, name)
	if err != nil {
		return 0, err
	}
	r.cache.Set(ctx, "publisher", name, id)
	return id, nil
}
