package author

import (
	"context"
	"strings"
)

// Service 作者领域服务
type Service interface {
	// GetByID 获取作者
	GetByID(ctx context.Context, id uint) (*Author, error)

	// Resolve 按名称解析作者ID(不存在则创建)
	Resolve(ctx context.Context, name string) (uint, error)
}

type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// Resolve 名称原样保存,只拒绝空白名称
func (s *service) Resolve(ctx context.Context, name string) (uint, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrBlankName
	}
	return s.repo.ResolveOrCreate(ctx, name)
}
