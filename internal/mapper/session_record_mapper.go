package mapper

import (
	"encoding/json"
	"fmt"
	"time"

	"genfy-be/internal/entity"
	"genfy-be/internal/model"
	"genfy-be/pkg/store"
)

type SessionRecordMapper struct{}

func NewSessionRecordMapper() *SessionRecordMapper {
	return &SessionRecordMapper{}
}

func (m *SessionRecordMapper) ToEntity(r *model.SessionRecord) (*entity.SessionRecord, error) {
	if r == nil {
		return nil, nil
	}

	var state store.Session
	if err := json.Unmarshal(r.Data, &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", r.Id, err)
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.SessionRecord{
		Id:        r.Id,
		UserId:    r.UserId,
		State:     &state,
		CreatedAt: r.CreatedAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (m *SessionRecordMapper) ToModel(r *entity.SessionRecord) (*model.SessionRecord, error) {
	if r == nil {
		return nil, nil
	}

	data, err := json.Marshal(r.State)
	if err != nil {
		return nil, fmt.Errorf("encode session %s: %w", r.Id, err)
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.SessionRecord{
		Id:        r.Id,
		UserId:    r.UserId,
		Data:      data,
		CreatedAt: r.CreatedAt,
		UpdatedAt: updatedAt,
	}, nil
}
