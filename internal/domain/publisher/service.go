package publisher

import (
	"context"
	"strings"
)

// Service 出版社领域服务
type Service interface {
	// GetByID 获取出版社
	GetByID(ctx context.Context, id uint) (*Publisher, error)

	// GetByName 按名称查找出版社(不创建),用于新增图书前的重复检查
	GetByName(ctx context.Context, name string) (*Publisher, error)

	// Resolve 按名称解析出版社ID(不存在则创建)
	Resolve(ctx context.Context, name string) (uint, error)
}

type service struct {
	repo Repository
}

// NewService 创建出版社领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id uint) (*Publisher, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (*Publisher, error) {
	return s.repo.FindByName(ctx, name)
}

// Resolve 名称原样保存,只拒绝空白名称
func (s *service) Resolve(ctx context.Context, name string) (uint, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrBlankName
	}
	return s.repo.ResolveOrCreate(ctx, name)
}
