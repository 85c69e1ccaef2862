package promptgen

import (
	"fmt"
	"hash/fnv"
	"strings"

	"genfy-be/internal/catalog"
	"genfy-be/pkg/store"
	"genfy-be/pkg/utils"
)

var variationStyles = []string{
	"creative and bold",
	"professional and refined",
	"experimental and unique",
	"artistic and expressive",
	"minimal and clean",
	"dramatic and intense",
	"subtle and sophisticated",
	"vibrant and energetic",
}

// VariationStyle cycles through the eight diversity directives per refresh.
func VariationStyle(refreshCount int) string {
	return variationStyles[refreshCount%len(variationStyles)]
}

// variationSeed is a stable pseudo-random tag in [1000, 9999] so repeated
// refreshes of the same question produce distinct but reproducible prompts.
func variationSeed(sessionID string, refreshCount int) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s:%d", sessionID, refreshCount)
	return 1000 + int(h.Sum32()%9000)
}

// previousAnswersContext summarizes answers to questions before the cursor.
func previousAnswersContext(s *store.Session, cat *catalog.Category, qIdx int) string {
	if qIdx == 0 {
		return "This is the first question - no previous context available."
	}

	var answered []string
	for i := 0; i < qIdx && i < len(cat.Questions); i++ {
		q := cat.Questions[i]
		if answer := s.Answers[q.Id]; answer != "" {
			answered = append(answered, fmt.Sprintf("- %s: %s", q.Text, answer))
		}
	}
	if len(answered) == 0 {
		return "No previous answers filled yet."
	}
	return "PREVIOUS CONTEXT:\n" + strings.Join(answered, "\n")
}

// BuildSuggestionPrompt renders the user prompt for suggestion generation.
// refreshCount > 0 adds a variation directive requesting different output.
func BuildSuggestionPrompt(s *store.Session, cat *catalog.Category, q *catalog.Question, qIdx int, currentInput string, refreshCount int) string {
	var currentInputContext string
	if strings.TrimSpace(currentInput) != "" {
		currentInputContext = fmt.Sprintf("\nCURRENT INPUT: %s\n", currentInput)
	}

	var variation string
	if refreshCount > 0 {
		variation = fmt.Sprintf(`
VARIATION #%d (Seed: %d):
- Focus on %s approaches
- Generate COMPLETELY DIFFERENT suggestions than previous attempts
- Explore alternative perspectives and synonyms
- Be MORE diverse than before
`, refreshCount, variationSeed(s.ID, refreshCount), VariationStyle(refreshCount))
	}

	return fmt.Sprintf(`
PROJECT INFO:
- User Main Idea: %s
- Category: %s

%s
%s

CURRENT QUESTION: %s
SUGGESTION LENGTH: %s

%s

Generate 5-6 UNIQUE suggestions following the length requirement.
Return ONLY valid JSON: {"suggestions": ["suggestion 1", "suggestion 2", "suggestion 3", "suggestion 4", "suggestion 5", "suggestion 6"]}
`, s.Idea, s.Category, previousAnswersContext(s, cat, qIdx), currentInputContext, q.Text, catalog.LengthGuide(q.Style), variation)
}

// ParseSuggestions extracts the suggestion list from a model response,
// truncating to six entries.
func ParseSuggestions(response string) []string {
	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := utils.DecodeLooseJSON(response, &out); err != nil {
		return nil
	}
	if len(out.Suggestions) > 6 {
		return out.Suggestions[:6]
	}
	return out.Suggestions
}
