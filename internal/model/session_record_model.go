package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SessionRecord is the durable copy of an in-memory session. The full state
// is stored as a JSON document; only ownership and timestamps are columns.
type SessionRecord struct {
	Id        string         `gorm:"type:varchar(64);primaryKey"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Data      datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (SessionRecord) TableName() string {
	return "sessions"
}
