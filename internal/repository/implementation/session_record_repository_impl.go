package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"genfy-be/internal/entity"
	"genfy-be/internal/mapper"
	"genfy-be/internal/model"
	"genfy-be/internal/repository/contract"
	"genfy-be/internal/repository/specification"
)

type SessionRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionRecordMapper
}

func NewSessionRecordRepository(db *gorm.DB) contract.SessionRecordRepository {
	return &SessionRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionRecordMapper(),
	}
}

func (r *SessionRecordRepositoryImpl) Upsert(ctx context.Context, record *entity.SessionRecord) error {
	m, err := r.mapper.ToModel(record)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "data", "updated_at"}),
	}).Create(m).Error
}

func (r *SessionRecordRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionRecord, error) {
	var m model.SessionRecord
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *SessionRecordRepositoryImpl) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.SessionRecord, error) {
	var models []*model.SessionRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("updated_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	records := make([]*entity.SessionRecord, 0, len(models))
	for _, m := range models {
		rec, err := r.mapper.ToEntity(m)
		if err != nil {
			// skip undecodable rows rather than failing the whole listing
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *SessionRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SessionRecord{}).Error
}

func (r *SessionRecordRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.SessionRecord{}).Error
}
