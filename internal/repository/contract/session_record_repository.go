package contract

import (
	"context"

	"github.com/google/uuid"

	"genfy-be/internal/entity"
	"genfy-be/internal/repository/specification"
)

type SessionRecordRepository interface {
	// Upsert writes the record, replacing any existing row with the same id.
	Upsert(ctx context.Context, record *entity.SessionRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionRecord, error)
	FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.SessionRecord, error)
	Delete(ctx context.Context, id string) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
}
