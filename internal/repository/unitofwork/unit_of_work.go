package unitofwork

import (
	"context"

	"genfy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SessionRecordRepository() contract.SessionRecordRepository
	PromptHistoryRepository() contract.PromptHistoryRepository
}
