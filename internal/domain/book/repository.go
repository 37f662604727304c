package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 列表类方法返回的图书都带上AuthorIDs
type Repository interface {
	// Create 创建图书,回填自增ID
	// (PublisherID, Title)重复时返回ErrBookDuplicate
	Create(ctx context.Context, book *Book) error

	// LinkAuthors 为图书关联作者,每个作者一行
	// 重复的作者ID(或已存在的关联)返回ErrAuthorLinkDuplicate,不做静默去重
	LinkAuthors(ctx context.Context, bookID uint, authorIDs []uint) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByTitleAndPublisher 根据书名和出版社查找图书
	FindByTitleAndPublisher(ctx context.Context, title string, publisherID uint) (*Book, error)

	// List 全部图书
	List(ctx context.Context) ([]*Book, error)

	// ListByAuthor 某作者的全部图书
	ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// ListByPublisher 某出版社的全部图书
	ListByPublisher(ctx context.Context, publisherID uint) ([]*Book, error)

	// UnlinkAuthors 删除图书的全部作者关联
	UnlinkAuthors(ctx context.Context, bookID uint) error

	// Delete 删除图书(物理删除),不存在返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error
}
