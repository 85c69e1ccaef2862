package contract

import (
	"context"

	"github.com/google/uuid"

	"genfy-be/internal/entity"
	"genfy-be/internal/repository/specification"
)

type PromptHistoryRepository interface {
	Create(ctx context.Context, history *entity.PromptHistory) error
	Update(ctx context.Context, history *entity.PromptHistory) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptHistory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptHistory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
