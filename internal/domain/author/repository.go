package author

import (
	"context"
)

// Repository 作者仓储接口
// 实现方:infrastructure/persistence/store(数据库)、persistence/redis(名称缓存装饰器)
type Repository interface {
	// FindByID 根据ID查找作者,不存在返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByName 根据名称查找作者,不存在返回ErrAuthorNotFound
	FindByName(ctx context.Context, name string) (*Author, error)

	// ResolveOrCreate 返回名称对应的作者ID,不存在时创建
	// 要求:幂等,同一名称只会产生一行记录
	ResolveOrCreate(ctx context.Context, name string) (uint, error)
}
