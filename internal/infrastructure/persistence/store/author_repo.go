package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// authorRepository 作者仓储实现
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(s *Store) author.Repository {
	return &authorRepository{db: s.DB}
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "Error selecting author")
	}
	return toAuthorEntity(&model), nil
}

// FindByName 根据名称查找作者
func (r *authorRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).Where("name = ?", name).Order("id").Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "Error selecting author")
	}
	return toAuthorEntity(&model), nil
}

// ResolveOrCreate 查找或创建作者
// 流程:
// 1. 按名称查询,命中直接返回
// 2. INSERT ... ON CONFLICT DO NOTHING,从插入结果直接拿自增ID
// 3. 插入未生效(并发写入者先插入了同名行)时再按名称查一次
func (r *authorRepository) ResolveOrCreate(ctx context.Context, name string) (uint, error) {
	existing, err := r.FindByName(ctx, name)
	if err == nil {
		countResolved("author", "existing")
		return existing.ID, nil
	}
	if !errors.Is(err, author.ErrAuthorNotFound) {
		return 0, err
	}

	model := AuthorModel{Name: name}
	result := getDB(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&model)
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "Error inserting author")
	}
	if result.RowsAffected > 0 && model.ID != 0 {
		countResolved("author", "created")
		return model.ID, nil
	}

	existing, err = r.FindByName(ctx, name)
	if err != nil {
		return 0, err
	}
	countResolved("author", "raced")
	return existing.ID, nil
}

func toAuthorEntity(m *AuthorModel) *author.Author {
	return &author.Author{ID: m.ID, Name: m.Name}
}

func countResolved(kind, result string) {
	metrics.IncCounterVec(metrics.NamesResolvedTotal, map[string]string{"kind": kind, "result": result})
}
