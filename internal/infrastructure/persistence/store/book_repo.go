package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// bookRepository 图书仓储实现
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 把唯一约束冲突转换为业务错误(409),其他数据库错误包装为500
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(s *Store) book.Repository {
	return &bookRepository{db: s.DB}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := &BookModel{
		Title:       b.Title,
		Price:       b.Price,
		PublisherID: b.PublisherID,
	}

	// 2. 插入数据库
	if err := getDB(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrBookDuplicate
		}
		return apperrors.Wrap(err, "Error inserting book")
	}

	// 3. 回填自增ID(直接取插入结果,不再按字段回查)
	b.ID = model.ID
	return nil
}

// LinkAuthors 批量写入关联行
func (r *bookRepository) LinkAuthors(ctx context.Context, bookID uint, authorIDs []uint) error {
	if len(authorIDs) == 0 {
		return nil
	}

	rows := make([]BookAuthorModel, 0, len(authorIDs))
	for _, id := range authorIDs {
		rows = append(rows, BookAuthorModel{BookID: bookID, AuthorID: id})
	}

	if err := getDB(ctx, r.db).Omit(clause.Associations).Create(&rows).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrAuthorLinkDuplicate
		}
		return apperrors.Wrap(err, "Error linking book authors")
	}
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "Error selecting book")
	}

	books, err := r.withAuthors(ctx, []BookModel{model})
	if err != nil {
		return nil, err
	}
	return books[0], nil
}

// FindByTitleAndPublisher 根据书名和出版社查找图书
func (r *bookRepository) FindByTitleAndPublisher(ctx context.Context, title string, publisherID uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).
		Where("title = ? AND publisher_id = ?", title, publisherID).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "Error selecting book")
	}
	return toBookEntity(&model), nil
}

// List 全部图书
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "Error selecting books")
	}
	return r.withAuthors(ctx, models)
}

// ListByAuthor 某作者的全部图书
func (r *bookRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).
		Joins("JOIN book_authors ON book_authors.book_id = books.id").
		Where("book_authors.author_id = ?", authorID).
		Order("books.id").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Error selecting author books")
	}
	return r.withAuthors(ctx, models)
}

// ListByPublisher 某出版社的全部图书
func (r *bookRepository) ListByPublisher(ctx context.Context, publisherID uint) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).Where("publisher_id = ?", publisherID).Order("id").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Error selecting publisher books")
	}
	return r.withAuthors(ctx, models)
}

// UnlinkAuthors 删除图书的全部关联行
func (r *bookRepository) UnlinkAuthors(ctx context.Context, bookID uint) error {
	err := getDB(ctx, r.db).Where("book_id = ?", bookID).Delete(&BookAuthorModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "Error deleting book authors")
	}
	return nil
}

// Delete 删除图书(物理删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Error deleting book")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// withAuthors 用一次IN查询补齐作者ID,避免每本书单独查询
func (r *bookRepository) withAuthors(ctx context.Context, models []BookModel) ([]*book.Book, error) {
	books := make([]*book.Book, 0, len(models))
	if len(models) == 0 {
		return books, nil
	}

	ids := make([]uint, 0, len(models))
	for i := range models {
		ids = append(ids, models[i].ID)
	}

	var links []BookAuthorModel
	err := getDB(ctx, r.db).
		Where("book_id IN ?", ids).
		Order("book_id, author_id").
		Find(&links).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Error selecting book authors")
	}

	byBook := make(map[uint][]uint, len(models))
	for _, l := range links {
		byBook[l.BookID] = append(byBook[l.BookID], l.AuthorID)
	}

	for i := range models {
		b := toBookEntity(&models[i])
		if authorIDs, ok := byBook[b.ID]; ok {
			b.AuthorIDs = authorIDs
		}
		books = append(books, b)
	}
	return books, nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:          m.ID,
		Title:       m.Title,
		Price:       m.Price,
		PublisherID: m.PublisherID,
		AuthorIDs:   []uint{},
	}
}
