package publisher

import (
	"context"
)

// Repository 出版社仓储接口
// 实现方:infrastructure/persistence/store(数据库)、persistence/redis(名称缓存装饰器)
type Repository interface {
	// FindByID 根据ID查找出版社,不存在返回ErrPublisherNotFound
	FindByID(ctx context.Context, id uint) (*Publisher, error)

	// FindByName 根据名称查找出版社,不存在返回ErrPublisherNotFound
	FindByName(ctx context.Context, name string) (*Publisher, error)

	// ResolveOrCreate 返回名称对应的出版社ID,不存在时创建
	// 要求:幂等,同一名称只会产生一行记录
	ResolveOrCreate(ctx context.Context, name string) (uint, error)
}
