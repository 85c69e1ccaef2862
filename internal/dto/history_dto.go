package dto

import (
	"time"

	"github.com/google/uuid"

	"genfy-be/pkg/store"
)

type HistoryItemResponse struct {
	Id                uuid.UUID `json:"id"`
	Category          string    `json:"category"`
	PromptText        string    `json:"prompt_text"`
	ModelUsed         string    `json:"model_used"`
	WordCount         int       `json:"word_count"`
	GeneratedImageUrl string    `json:"generated_image_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type AttachImageRequest struct {
	ImageUrl string `json:"image_url" validate:"required,url"`
}

type HistoryDetailResponse struct {
	Id                uuid.UUID            `json:"id"`
	Category          string               `json:"category"`
	UserIdea          string               `json:"user_idea"`
	PromptText        string               `json:"prompt_text"`
	ModelUsed         string               `json:"model_used"`
	Answers           map[string]string    `json:"answers"`
	Visual            store.VisualSettings `json:"visual_settings"`
	Files             []store.UploadedFile `json:"files"`
	GeneratedImageUrl string               `json:"generated_image_url,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}
