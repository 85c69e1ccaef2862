package dto

import "genfy-be/pkg/store"

type StartChatResponse struct {
	Messages        []store.ChatMessage `json:"messages"`
	CurrentQuestion *QuestionResponse   `json:"current_question"`
}

type QuestionResponse struct {
	Id          string `json:"id"`
	Text        string `json:"text"`
	Placeholder string `json:"placeholder"`
	Style       string `json:"style"`
	Index       int    `json:"index"`
	Total       int    `json:"total"`
}

type CurrentQuestionResponse struct {
	Question *QuestionResponse `json:"question"`
	Complete bool              `json:"complete"`
}

type ChatMessagesResponse struct {
	Messages []store.ChatMessage `json:"messages"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

type SubmitAnswerResponse struct {
	Messages             []store.ChatMessage `json:"messages"`
	NextQuestion         *QuestionResponse   `json:"next_question"`
	ShouldGeneratePrompt bool                `json:"should_generate_prompt"`
	FinalPrompt          string              `json:"final_prompt,omitempty"`
}

type SkipQuestionsResponse struct {
	Skipped              int    `json:"skipped"`
	ShouldGeneratePrompt bool   `json:"should_generate_prompt"`
	FinalPrompt          string `json:"final_prompt,omitempty"`
}
