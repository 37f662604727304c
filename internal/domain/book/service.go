package book

import (
	"context"
	"errors"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 录入图书需要跨三个聚合:出版社、作者、图书
// 2. 名称→ID的解析委托给作者/出版社领域服务
type Service interface {
	// Publish 录入图书(POST /book)
	// 业务规则:
	// - 草稿必须通过Validate,且至少有一个作者
	// - 同一出版社下不能有同名图书(先查一次,唯一索引兜底)
	Publish(ctx context.Context, draft Draft) (*Book, error)

	// Import 导入图书(种子数据),不做重复预检查
	Import(ctx context.Context, draft Draft) (*Book, error)

	// Get 根据ID获取图书
	Get(ctx context.Context, id uint) (*Book, error)

	// List 全部图书,没有图书时返回空切片
	List(ctx context.Context) ([]*Book, error)

	// ListByAuthor 某作者的图书,没有结果返回ErrNoBooksFound
	ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// ListByPublisher 某出版社的图书,没有结果返回ErrNoBooksFound
	ListByPublisher(ctx context.Context, publisherID uint) ([]*Book, error)

	// Delete 删除图书及其作者关联
	// 注意:调用方负责把它放进事务(关联行和图书行一起删除)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo       Repository
	authors    author.Service
	publishers publisher.Service
}

// NewService 创建图书领域服务
func NewService(repo Repository, authors author.Service, publishers publisher.Service) Service {
	return &service{
		repo:       repo,
		authors:    authors,
		publishers: publishers,
	}
}

// Publish 录入图书
func (s *service) Publish(ctx context.Context, draft Draft) (*Book, error) {
	// 1. 草稿校验(失败时不触碰存储)
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if len(draft.Authors) == 0 {
		return nil, ErrBlankField
	}

	// 2. 重复检查:出版社不存在时必然不重复
	p, err := s.publishers.GetByName(ctx, draft.Publisher)
	switch {
	case err == nil:
		_, err = s.repo.FindByTitleAndPublisher(ctx, draft.Title, p.ID)
		if err == nil {
			return nil, ErrBookDuplicate
		}
		if !errors.Is(err, ErrBookNotFound) {
			return nil, err
		}
	case !errors.Is(err, publisher.ErrPublisherNotFound):
		return nil, err
	}

	// 3. 解析名称并写入
	return s.create(ctx, draft)
}

// Import 导入图书
func (s *service) Import(ctx context.Context, draft Draft) (*Book, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return s.create(ctx, draft)
}

// create 解析出版社 → 逐个解析作者 → 写入图书 → 关联作者
// 各步骤不在同一事务中,中途失败会留下已创建的出版社/作者
func (s *service) create(ctx context.Context, draft Draft) (*Book, error) {
	publisherID, err := s.publishers.Resolve(ctx, draft.Publisher)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint, 0, len(draft.Authors))
	for _, name := range draft.Authors {
		id, err := s.authors.Resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		authorIDs = append(authorIDs, id)
	}

	b := NewBook(draft.Title, draft.Price, publisherID)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	if err := s.repo.LinkAuthors(ctx, b.ID, authorIDs); err != nil {
		return nil, err
	}
	b.AuthorIDs = authorIDs

	return b, nil
}

func (s *service) Get(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []*Book{}
	}
	return books, nil
}

func (s *service) ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error) {
	books, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNoBooksFound
	}
	return books, nil
}

func (s *service) ListByPublisher(ctx context.Context, publisherID uint) ([]*Book, error) {
	books, err := s.repo.ListByPublisher(ctx, publisherID)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNoBooksFound
	}
	return books, nil
}

// Delete 删除图书
// 关联表没有级联删除,必须先显式删除关联行
func (s *service) Delete(ctx context.Context, id uint) error {
	// 1. 确认存在
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	// 2. 删除关联
	if err := s.repo.UnlinkAuthors(ctx, id); err != nil {
		return err
	}

	// 3. 删除图书
	return s.repo.Delete(ctx, id)
}
