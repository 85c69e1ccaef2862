package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeLooseJSON unmarshals JSON that an LLM may have wrapped in markdown
// fences or surrounded with prose. It first tries the fenced-stripped content
// as-is, then falls back to the outermost { ... } span.
func DecodeLooseJSON(content string, v any) error {
	cleaned := stripFences(content)
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return fmt.Errorf("no JSON object found in response")
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), v); err != nil {
		return fmt.Errorf("parse LLM JSON: %w", err)
	}
	return nil
}

func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
