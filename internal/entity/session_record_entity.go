package entity

import (
	"time"

	"github.com/google/uuid"

	"genfy-be/pkg/store"
)

// SessionRecord carries a persisted session together with its owner.
type SessionRecord struct {
	Id        string
	UserId    uuid.UUID
	State     *store.Session
	CreatedAt time.Time
	UpdatedAt *time.Time
}
