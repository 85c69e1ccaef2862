package vision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-key")
	assert.NoError(t, err)
	c.BaseURL = srv.URL
	return c, srv
}

func TestPlannerPlan(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"focus_areas\":[\"subject_details\",\"lighting\"],\"reasoning\":\"identity matters\"}"}}]}`))
	})

	plan := NewPlanner(c).Plan(context.Background(), "this person on a beach", "Realistic Photo")
	assert.Equal(t, []string{"subject_details", "lighting"}, plan.FocusAreas)
	assert.Equal(t, "identity matters", plan.Reasoning)
}

func TestPlannerPlanFallsBackOnAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	plan := NewPlanner(c).Plan(context.Background(), "idea", "Logo")
	assert.Equal(t, []string{"composition", "lighting", "colors", "mood"}, plan.FocusAreas)
	assert.Contains(t, plan.Reasoning, "Default")
}

func TestPlannerPlanFallsBackOnBadJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"sorry, cannot comply"}}]}`))
	})

	plan := NewPlanner(c).Plan(context.Background(), "idea", "Logo")
	assert.Equal(t, []string{"composition", "lighting", "colors", "mood"}, plan.FocusAreas)
}

func TestPlannerPlanWithoutClient(t *testing.T) {
	plan := NewPlanner(nil).Plan(context.Background(), "idea", "Logo")
	assert.Equal(t, []string{"composition", "lighting", "colors", "mood"}, plan.FocusAreas)
}

func TestDescribeImage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Genfy", r.Header.Get("X-Title"))
		w.Write([]byte(`{"choices":[{"message":{"content":"a warm portrait at golden hour"}}]}`))
	})

	out, err := c.DescribeImage(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg", "describe this")
	assert.NoError(t, err)
	assert.Equal(t, "a warm portrait at golden hour", out)
}

func TestBuildAnalysisPrompt(t *testing.T) {
	p := BuildAnalysisPrompt([]string{"lighting", "subject_details"}, "person in a suit")
	assert.Contains(t, p, "focusing specifically on: lighting, subject_details")
	assert.Contains(t, p, "Facial features")
	assert.Contains(t, p, "User Context: person in a suit")

	generic := BuildAnalysisPrompt(nil, "")
	assert.Contains(t, generic, "Visual Description")
	assert.NotContains(t, generic, "focusing specifically")
}
