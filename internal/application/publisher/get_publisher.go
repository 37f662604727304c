package publisher

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// GetPublisherUseCase 查询出版社名称
type GetPublisherUseCase struct {
	publisherService publisher.Service
}

// NewGetPublisherUseCase 创建查询出版社用例
func NewGetPublisherUseCase(publisherService publisher.Service) *GetPublisherUseCase {
	return &GetPublisherUseCase{publisherService: publisherService}
}

// GetPublisherResponse 出版社名称
type GetPublisherResponse struct {
	Name string `json:"name"`
}

func (uc *GetPublisherUseCase) Execute(ctx context.Context, id uint) (resp *GetPublisherResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog/application/publisher", "GetPublisher")
	defer func() { tracing.End(span, err) }()

	p, err := uc.publisherService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GetPublisherResponse{Name: p.Name}, nil
}
