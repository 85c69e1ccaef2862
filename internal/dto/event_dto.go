package dto

import "time"

// Events published on the in-process bus.

type PromptGeneratedEvent struct {
	SessionId   string    `json:"session_id"`
	UserId      string    `json:"user_id,omitempty"`
	Category    string    `json:"category"`
	ModelUsed   string    `json:"model_used"`
	WordCount   int       `json:"word_count"`
	QuickMode   bool      `json:"quick_mode"`
	GeneratedAt time.Time `json:"generated_at"`
}

type SessionDeletedEvent struct {
	SessionId string    `json:"session_id"`
	UserId    string    `json:"user_id,omitempty"`
	DeletedAt time.Time `json:"deleted_at"`
}
