package dto

type SuggestionsResponse struct {
	QuestionId  string   `json:"question_id"`
	Suggestions []string `json:"suggestions"`
	FromCache   bool     `json:"from_cache"`
}

type ToggleSuggestionRequest struct {
	Suggestion string `json:"suggestion" validate:"required"`
}

type ToggleSuggestionResponse struct {
	Selected []string `json:"selected"`
	Combined string   `json:"combined"`
}

type SelectedSuggestionsResponse struct {
	Selected []string `json:"selected"`
}
