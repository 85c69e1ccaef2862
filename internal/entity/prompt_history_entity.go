package entity

import (
	"time"

	"github.com/google/uuid"

	"genfy-be/pkg/store"
)

type PromptHistory struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	Category          string
	UserIdea          string
	LlmUsed           string
	Answers           map[string]string
	FinalPrompt       string
	VisualSettings    store.VisualSettings
	GeneratedImageUrl string
	Files             []store.UploadedFile
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	DeletedAt         *time.Time
	IsDeleted         bool
}
