package dto

import (
	"time"

	"genfy-be/pkg/store"
)

type CreateSessionResponse struct {
	SessionId string `json:"session_id"`
	LLM       string `json:"llm"`
}

type SessionStateResponse struct {
	SessionId     string               `json:"session_id"`
	CurrentStep   string               `json:"current_step"`
	Category      string               `json:"category"`
	LLM           string               `json:"llm"`
	QuestionIndex int                  `json:"question_index"`
	Answers       map[string]string    `json:"answers"`
	Visual        store.VisualSettings `json:"visual_settings"`
	FileCount     int                  `json:"file_count"`
	HasFinal      bool                 `json:"has_final_prompt"`
	CreatedAt     time.Time            `json:"created_at"`
}

type SelectLLMRequest struct {
	LLM string `json:"llm" validate:"required"`
}

type AvailableLLMsResponse struct {
	Default   string          `json:"default"`
	Providers map[string]bool `json:"providers"`
}
