package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// publisherRepository 出版社仓储实现
type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository 创建出版社仓储
func NewPublisherRepository(s *Store) publisher.Repository {
	return &publisherRepository{db: s.DB}
}

func (r *publisherRepository) FindByID(ctx context.Context, id uint) (*publisher.Publisher, error) {
	var model PublisherModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, apperrors.Wrap(err, "Error selecting publisher")
	}
	return &publisher.Publisher{ID: model.ID, Name: model.Name}, nil
}

func (r *publisherRepository) FindByName(ctx context.Context, name string) (*publisher.Publisher, error) {
	var model PublisherModel
	if err := getDB(ctx, r.db).Where("name = ?", name).Order("id").Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, apperrors.Wrap(err, "Error selecting publisher")
	}
	return &publisher.Publisher{ID: model.ID, Name: model.Name}, nil
}

// ResolveOrCreate 查找或创建出版社,流程同作者
func (r *publisherRepository) ResolveOrCreate(ctx context.Context, name string) (uint, error) {
	p, err := r.FindByName(ctx, name)
	if err == nil {
		countResolved("publisher", "existing")
		return p.ID, nil
	}
	if !errors.Is(err, publisher.ErrPublisherNotFound) {
		return 0, err
	}

	model := PublisherModel{Name: name}
	result := getDB(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&model)
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "Error inserting publisher")
	}
	if result.RowsAffected > 0 && model.ID != 0 {
		countResolved("publisher", "created")
		return model.ID, nil
	}

	p, err = r.FindByName(ctx, name)
	if err != nil {
		return 0, err
	}
	countResolved("publisher", "raced")
	return p.ID, nil
}
