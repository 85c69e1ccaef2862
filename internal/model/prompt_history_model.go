package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PromptHistory struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Category          string         `gorm:"type:varchar(100)"`
	UserIdea          string         `gorm:"type:text"`
	LlmUsed           string         `gorm:"type:varchar(50)"`
	Answers           datatypes.JSON
	FinalPrompt       string         `gorm:"type:text"`
	VisualSettings    datatypes.JSON
	GeneratedImageUrl string         `gorm:"type:text"`
	Files             datatypes.JSON
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (PromptHistory) TableName() string {
	return "prompt_history"
}
