package author

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// GetAuthorUseCase 查询作者名称
type GetAuthorUseCase struct {
	authorService author.Service
}

// NewGetAuthorUseCase 创建查询作者用例
func NewGetAuthorUseCase(authorService author.Service) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorService: authorService}
}

// GetAuthorResponse 只返回名称,与浏览器页面的渲染需求一致
type GetAuthorResponse struct {
	Name string `json:"name"`
}

// Execute 执行查询
func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (resp *GetAuthorResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog/application/author", "GetAuthor")
	defer func() { tracing.End(span, err) }()

	a, err := uc.authorService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GetAuthorResponse{Name: a.Name}, nil
}
