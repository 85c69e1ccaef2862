package dto

import "genfy-be/pkg/store"

type FinalPromptResponse struct {
	FinalPrompt string               `json:"final_prompt"`
	Category    string               `json:"category"`
	LLM         string               `json:"llm"`
	Answers     map[string]string    `json:"answers"`
	Visual      store.VisualSettings `json:"visual_settings"`
	WordCount   int                  `json:"word_count"`
	Generated   bool                 `json:"generated"`
}

type RefinePromptRequest struct {
	Instruction string `json:"instruction" validate:"required"`
}

type RefinePromptResponse struct {
	FinalPrompt string `json:"final_prompt"`
}
