package promptgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"genfy-be/internal/catalog"
	"genfy-be/pkg/store"
)

func newSession() *store.Session {
	s := store.New("sess-1", "mistral")
	s.Category = "Realistic Photo"
	s.Idea = "a lighthouse at dawn"
	return s
}

func TestSuggestionTemperature(t *testing.T) {
	assert.InDelta(t, 0.7, SuggestionTemperature(0), 1e-9)
	assert.InDelta(t, 0.8, SuggestionTemperature(1), 1e-9)
	assert.InDelta(t, 1.0, SuggestionTemperature(3), 1e-9)
	// capped after the third refresh
	assert.InDelta(t, 1.0, SuggestionTemperature(9), 1e-9)
}

func TestVariationStyle(t *testing.T) {
	assert.Equal(t, "professional and refined", VariationStyle(1))
	assert.Equal(t, "vibrant and energetic", VariationStyle(7))
	// wraps around modulo eight
	assert.Equal(t, VariationStyle(1), VariationStyle(9))
}

func TestBuildSuggestionPrompt(t *testing.T) {
	s := newSession()
	cat, _ := catalog.Get("Realistic Photo")
	s.Answers["subject"] = "old stone lighthouse"

	q, _ := cat.QuestionAt(1)
	prompt := BuildSuggestionPrompt(s, cat, q, 1, "moody", 0)

	assert.Contains(t, prompt, "User Main Idea: a lighthouse at dawn")
	assert.Contains(t, prompt, "PREVIOUS CONTEXT:")
	assert.Contains(t, prompt, "Main subject/scene: old stone lighthouse")
	assert.Contains(t, prompt, "CURRENT INPUT: moody")
	assert.Contains(t, prompt, "SUGGESTION LENGTH: 1-3 words")
	assert.NotContains(t, prompt, "VARIATION")
}

func TestBuildSuggestionPromptFirstQuestion(t *testing.T) {
	s := newSession()
	cat, _ := catalog.Get("Realistic Photo")
	q, _ := cat.QuestionAt(0)

	prompt := BuildSuggestionPrompt(s, cat, q, 0, "", 0)
	assert.Contains(t, prompt, "This is the first question")
}

func TestBuildSuggestionPromptRefresh(t *testing.T) {
	s := newSession()
	cat, _ := catalog.Get("Realistic Photo")
	q, _ := cat.QuestionAt(0)

	first := BuildSuggestionPrompt(s, cat, q, 0, "", 1)
	assert.Contains(t, first, "VARIATION #1")
	assert.Contains(t, first, "professional and refined")

	// same refresh count is reproducible, next refresh differs
	assert.Equal(t, first, BuildSuggestionPrompt(s, cat, q, 0, "", 1))
	assert.NotEqual(t, first, BuildSuggestionPrompt(s, cat, q, 0, "", 2))
}

func TestParseSuggestions(t *testing.T) {
	out := ParseSuggestions(`{"suggestions": ["a", "b", "c", "d", "e", "f", "g"]}`)
	assert.Len(t, out, 6)

	out = ParseSuggestions("```json\n{\"suggestions\": [\"one\", \"two\"]}\n```")
	assert.Equal(t, []string{"one", "two"}, out)

	assert.Nil(t, ParseSuggestions("not json at all"))
}

func TestBuildFinalPrompt(t *testing.T) {
	s := newSession()
	cat, _ := catalog.Get("Realistic Photo")
	s.Answers["subject"] = "old stone lighthouse"
	s.Answers["lighting"] = "golden hour"
	catalog.ApplyVisualSettings(s, store.VisualSettings{ColorPalette: "Warm Tones (oranges, reds)"})

	prompt := BuildFinalPrompt(s, cat)
	assert.Contains(t, prompt, "Category: Realistic Photo")
	assert.Contains(t, prompt, "- Color Palette: Warm Tones (oranges, reds)")
	assert.Contains(t, prompt, "Main subject/scene: old stone lighthouse")
	assert.Contains(t, prompt, "including detailed subject description")
	assert.NotContains(t, prompt, "REFERENCE IMAGE MODE")
}

func TestBuildFinalPromptWithReference(t *testing.T) {
	s := newSession()
	cat, _ := catalog.Get("Realistic Photo")
	s.ReferenceAnalyses = append(s.ReferenceAnalyses, store.ReferenceAnalysis{
		Filename:   "ref.jpg",
		Analysis:   "warm backlit portrait",
		FocusAreas: []string{"lighting", "mood"},
	})

	prompt := BuildFinalPrompt(s, cat)
	assert.Contains(t, prompt, "Reference Image 1: ref.jpg")
	assert.Contains(t, prompt, "Focus Areas: lighting, mood")
	assert.Contains(t, prompt, "REFERENCE IMAGE MODE")
	assert.Contains(t, prompt, "GENERIC descriptive terms")
}

func TestBuildQuickPrompt(t *testing.T) {
	s := newSession()
	prompt := BuildQuickPrompt(s)
	assert.Contains(t, prompt, "User Main Idea: a lighthouse at dawn")
	assert.Contains(t, prompt, "VISUAL SETTINGS: None")
	assert.Contains(t, prompt, "intelligent assumptions")
}

func TestBuildRefinePrompt(t *testing.T) {
	s := newSession()
	s.FinalPrompt = "a lighthouse at dawn, 85mm"

	prompt := BuildRefinePrompt(s, "make it stormy")
	assert.Contains(t, prompt, "CURRENT PROMPT:\na lighthouse at dawn, 85mm")
	assert.Contains(t, prompt, "USER REFINEMENT REQUEST:\nmake it stormy")
	assert.NotContains(t, prompt, "REFERENCE IMAGE ANALYSIS")

	s.ReferenceAnalyses = append(s.ReferenceAnalyses, store.ReferenceAnalysis{Filename: "ref.jpg", Analysis: "x"})
	withRef := BuildRefinePrompt(s, "make it stormy")
	assert.Contains(t, withRef, "REFERENCE IMAGE ANALYSIS")
	assert.Contains(t, withRef, "DO NOT REMOVE THIS INSTRUCTION")
}
