package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"genfy-be/internal/entity"
	"genfy-be/internal/mapper"
	"genfy-be/internal/model"
	"genfy-be/internal/repository/contract"
	"genfy-be/internal/repository/scope"
	"genfy-be/internal/repository/specification"
)

type PromptHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PromptHistoryMapper
}

func NewPromptHistoryRepository(db *gorm.DB) contract.PromptHistoryRepository {
	return &PromptHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewPromptHistoryMapper(),
	}
}

func (r *PromptHistoryRepositoryImpl) Create(ctx context.Context, history *entity.PromptHistory) error {
	m := r.mapper.ToModel(history)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*history = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromptHistoryRepositoryImpl) Update(ctx context.Context, history *entity.PromptHistory) error {
	m := r.mapper.ToModel(history)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*history = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromptHistoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PromptHistory{}, id).Error
}

func (r *PromptHistoryRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	// Clearing history is a hard delete, soft-deleted rows included.
	return r.db.WithContext(ctx).Scopes(scope.WithSoftDelete).Where("user_id = ?", userId).Delete(&model.PromptHistory{}).Error
}

func (r *PromptHistoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptHistory, error) {
	var m model.PromptHistory
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PromptHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptHistory, error) {
	var models []*model.PromptHistory
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PromptHistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.PromptHistory{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
