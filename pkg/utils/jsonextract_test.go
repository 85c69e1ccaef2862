package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeLooseJSON(t *testing.T) {
	type payload struct {
		FocusAreas []string `json:"focus_areas"`
	}

	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "plain json",
			content: `{"focus_areas": ["lighting", "mood"]}`,
			want:    []string{"lighting", "mood"},
		},
		{
			name:    "markdown fenced",
			content: "```json\n{\"focus_areas\": [\"colors\"]}\n```",
			want:    []string{"colors"},
		},
		{
			name:    "embedded in prose",
			content: `Here is my analysis: {"focus_areas": ["composition"]} hope it helps!`,
			want:    []string{"composition"},
		},
		{
			name:    "no object",
			content: "I cannot produce JSON for this request.",
			wantErr: true,
		},
		{
			name:    "malformed object",
			content: `{"focus_areas": [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := DecodeLooseJSON(tt.content, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, p.FocusAreas)
		})
	}
}
