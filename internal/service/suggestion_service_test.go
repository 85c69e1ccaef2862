package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"genfy-be/internal/dto"
)

func newSuggestionFixture(t *testing.T, provider *stubProvider) (ISuggestionService, ISessionService, string) {
	t.Helper()
	sessions := newTestSessionService(newFakeStore(), provider, &stubPublisher{})
	conv := NewConversationService(sessions)
	svc := NewSuggestionService(sessions, newTestRegistry(provider), nopLogger{})

	created, _ := sessions.Create(context.Background())
	cats := NewCategoryService(sessions)
	_, err := cats.Select(context.Background(), created.SessionId, "", &dto.SelectCategoryRequest{Category: "Realistic Photo"})
	assert.NoError(t, err)
	_, err = conv.Start(context.Background(), created.SessionId, "")
	assert.NoError(t, err)

	return svc, sessions, created.SessionId
}

func TestSuggestionsCachedOnInitialFetch(t *testing.T) {
	provider := &stubProvider{response: `{"suggestions": ["misty forest", "red fox", "city at dusk"]}`}
	svc, _, id := newSuggestionFixture(t, provider)

	res, err := svc.Get(context.Background(), id, "", 0, "")
	assert.NoError(t, err)
	assert.False(t, res.FromCache)
	assert.Equal(t, []string{"misty forest", "red fox", "city at dusk"}, res.Suggestions)
	assert.Equal(t, 1, provider.calls)

	// Second initial fetch hits the cache, no extra model call.
	res, err = svc.Get(context.Background(), id, "", 0, "")
	assert.NoError(t, err)
	assert.True(t, res.FromCache)
	assert.Equal(t, 1, provider.calls)
}

func TestSuggestionsRefreshBypassesCache(t *testing.T) {
	provider := &stubProvider{response: `{"suggestions": ["one", "two"]}`}
	svc, _, id := newSuggestionFixture(t, provider)

	_, err := svc.Get(context.Background(), id, "", 0, "")
	assert.NoError(t, err)

	res, err := svc.Get(context.Background(), id, "", 1, "")
	assert.NoError(t, err)
	assert.False(t, res.FromCache)
	assert.Equal(t, 2, provider.calls)
}

func TestSuggestionsTruncatedToSix(t *testing.T) {
	provider := &stubProvider{response: `{"suggestions": ["a","b","c","d","e","f","g","h"]}`}
	svc, _, id := newSuggestionFixture(t, provider)

	res, err := svc.Get(context.Background(), id, "", 0, "")
	assert.NoError(t, err)
	assert.Len(t, res.Suggestions, 6)
}

func TestToggleAndClear(t *testing.T) {
	provider := &stubProvider{response: `{"suggestions": ["one"]}`}
	svc, _, id := newSuggestionFixture(t, provider)

	res, err := svc.Toggle(context.Background(), id, "", &dto.ToggleSuggestionRequest{Suggestion: "golden light"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"golden light"}, res.Selected)

	res, err = svc.Toggle(context.Background(), id, "", &dto.ToggleSuggestionRequest{Suggestion: "soft shadows"})
	assert.NoError(t, err)
	assert.Equal(t, "golden light, soft shadows", res.Combined)

	// Toggling again removes the chip.
	res, err = svc.Toggle(context.Background(), id, "", &dto.ToggleSuggestionRequest{Suggestion: "golden light"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"soft shadows"}, res.Selected)

	assert.NoError(t, svc.Clear(context.Background(), id, ""))
	sel, err := svc.Selected(context.Background(), id, "")
	assert.NoError(t, err)
	assert.Empty(t, sel.Selected)
}

func TestSuggestionsProviderFailureReturnsEmptyList(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream timeout")}
	svc, _, id := newSuggestionFixture(t, provider)

	res, err := svc.Get(context.Background(), id, "", 0, "")
	assert.NoError(t, err)
	assert.Empty(t, res.Suggestions)
	assert.False(t, res.FromCache)
}
