package store

import "time"

// Session represents the active prompt-builder session state.
// It is cached in memory and persisted as a JSON blob on every commit.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"` // empty until claimed by an authenticated user

	CurrentStep string `json:"current_step"` // "category" | "visual_settings" | "chat" | "final_prompt"
	Provider    string `json:"provider"`     // selected LLM provider key

	Category string         `json:"category"`
	Idea     string         `json:"idea"`
	Visual   VisualSettings `json:"visual_settings"`

	// THE CONVERSATION (per-category question flow)
	Cursor   int               `json:"cursor"` // index of the next unanswered question
	Answers  map[string]string `json:"answers"`
	Messages []ChatMessage     `json:"messages"`

	// Suggestion state for the question at the cursor
	SelectedChips   []string            `json:"selected_chips"`
	SuggestionCache map[string][]string `json:"suggestion_cache"` // question id -> cached options

	// Reference material
	UploadedFiles     []UploadedFile      `json:"uploaded_files"`
	ReferenceAnalyses []ReferenceAnalysis `json:"reference_analyses"`

	FinalPrompt string    `json:"final_prompt"`
	CreatedAt   time.Time `json:"created_at"`
}

// VisualSettings holds the chosen presentation parameters. Empty string means unset.
type VisualSettings struct {
	ColorPalette   string `json:"color_palette"`
	AspectRatio    string `json:"aspect_ratio"`
	CameraSettings string `json:"camera_settings"`
	ImagePurpose   string `json:"image_purpose"`
}

// Empty reports whether no visual setting has been chosen.
func (v VisualSettings) Empty() bool {
	return v.ColorPalette == "" && v.AspectRatio == "" && v.CameraSettings == "" && v.ImagePurpose == ""
}

type ChatMessage struct {
	Role    string `json:"role"` // RoleUser | RoleAssistant
	Content string `json:"content"`
}

// UploadedFile tracks one reference upload. Analyzed flips to true exactly once,
// when a vision analysis for the file succeeds.
type UploadedFile struct {
	Name       string    `json:"name"`
	Locator    string    `json:"locator"`
	MimeType   string    `json:"mime_type"`
	UploadedAt time.Time `json:"uploaded_at"`

	Analyzed      bool     `json:"analyzed"`
	Summary       string   `json:"summary,omitempty"`
	AnalyzedBy    string   `json:"analyzed_by,omitempty"`
	FocusAreas    []string `json:"focus_areas,omitempty"`
	AnalysisError string   `json:"analysis_error,omitempty"`
}

// ReferenceAnalysis is an append-only record of one successful image analysis.
type ReferenceAnalysis struct {
	Filename   string    `json:"filename"`
	Analysis   string    `json:"analysis"`
	FocusAreas []string  `json:"focus_areas"`
	Timestamp  time.Time `json:"timestamp"`
}

const (
	StepCategory       = "category"
	StepVisualSettings = "visual_settings"
	StepChat           = "chat"
	StepFinalPrompt    = "final_prompt"

	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// New returns a fresh unowned session positioned at the category step.
func New(id, defaultProvider string) *Session {
	return &Session{
		ID:              id,
		CurrentStep:     StepCategory,
		Provider:        defaultProvider,
		Answers:         make(map[string]string),
		Messages:        make([]ChatMessage, 0),
		SelectedChips:   make([]string, 0),
		SuggestionCache: make(map[string][]string),
		UploadedFiles:   make([]UploadedFile, 0),
		CreatedAt:       time.Now(),
	}
}

// AddMessage appends a chat turn.
func (s *Session) AddMessage(role, content string) {
	s.Messages = append(s.Messages, ChatMessage{Role: role, Content: content})
}

// HasChip reports chip membership.
func (s *Session) HasChip(chip string) bool {
	for _, c := range s.SelectedChips {
		if c == chip {
			return true
		}
	}
	return false
}

// ToggleChip flips membership of a chip in the selection.
func (s *Session) ToggleChip(chip string) {
	if s.HasChip(chip) {
		s.RemoveChip(chip)
		return
	}
	s.SelectedChips = append(s.SelectedChips, chip)
}

// AddChip adds a chip; no-op when already selected.
func (s *Session) AddChip(chip string) {
	if s.HasChip(chip) {
		return
	}
	s.SelectedChips = append(s.SelectedChips, chip)
}

// RemoveChip removes a chip; no-op when absent.
func (s *Session) RemoveChip(chip string) {
	for i, c := range s.SelectedChips {
		if c == chip {
			s.SelectedChips = append(s.SelectedChips[:i], s.SelectedChips[i+1:]...)
			return
		}
	}
}

// ClearChips empties the chip selection.
func (s *Session) ClearChips() {
	s.SelectedChips = make([]string, 0)
}

// UnanalyzedFiles returns indexes of uploaded files not yet analyzed.
func (s *Session) UnanalyzedFiles() []int {
	idx := make([]int, 0)
	for i, f := range s.UploadedFiles {
		if !f.Analyzed {
			idx = append(idx, i)
		}
	}
	return idx
}
