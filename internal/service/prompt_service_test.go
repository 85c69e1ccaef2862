package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"genfy-be/internal/dto"
	"genfy-be/internal/pkg/apperrors"
	"genfy-be/pkg/store"
)

type stubAnalysis struct {
	calls int
}

func (a *stubAnalysis) AnalyzeReferences(ctx context.Context, session *store.Session, userContext string) {
	a.calls++
}

type promptFixture struct {
	sessions ISessionService
	conv     IConversationService
	prompts  IPromptService
	fake     *fakeStore
	pub      *stubPublisher
	analysis *stubAnalysis
	id       string
}

func newPromptFixture(t *testing.T, provider *stubProvider) *promptFixture {
	t.Helper()
	fake := newFakeStore()
	pub := &stubPublisher{}
	analysis := &stubAnalysis{}

	sessions := newTestSessionService(fake, provider, pub)
	conv := NewConversationService(sessions)
	prompts := NewPromptService(&fakeFactory{store: fake}, sessions, analysis, newTestRegistry(provider), pub, nopLogger{})

	created, _ := sessions.Create(context.Background())
	cats := NewCategoryService(sessions)
	_, err := cats.Select(context.Background(), created.SessionId, "", &dto.SelectCategoryRequest{Category: "Realistic Photo", UserIdea: "a quiet harbor at dawn"})
	assert.NoError(t, err)

	return &promptFixture{
		sessions: sessions,
		conv:     conv,
		prompts:  prompts,
		fake:     fake,
		pub:      pub,
		analysis: analysis,
		id:       created.SessionId,
	}
}

func TestGenerateFinal(t *testing.T) {
	provider := &stubProvider{response: "A quiet harbor at dawn, soft golden light, 85mm lens."}
	f := newPromptFixture(t, provider)

	_, _ = f.conv.Start(context.Background(), f.id, "")
	_, _ = f.conv.Skip(context.Background(), f.id, "")

	res, err := f.prompts.GenerateFinal(context.Background(), f.id, "")
	assert.NoError(t, err)
	assert.Equal(t, provider.response, res.FinalPrompt)
	assert.True(t, res.Generated)
	assert.Equal(t, 10, res.WordCount)
	assert.Equal(t, 1, f.analysis.calls)
	assert.Len(t, f.pub.generated, 1)
	assert.False(t, f.pub.generated[0].QuickMode)

	session, _ := f.sessions.Load(context.Background(), f.id, "")
	assert.Equal(t, store.StepFinalPrompt, session.CurrentStep)
	assert.Contains(t, session.Messages[len(session.Messages)-1].Content, "Generating your professional prompt")
}

func TestGenerateFinalEmptyResponse(t *testing.T) {
	f := newPromptFixture(t, &stubProvider{response: "   "})

	_, err := f.prompts.GenerateFinal(context.Background(), f.id, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestGenerateQuick(t *testing.T) {
	provider := &stubProvider{response: "A lighthouse on a cliff, dramatic storm clouds."}
	f := newPromptFixture(t, provider)

	res, err := f.prompts.GenerateQuick(context.Background(), f.id, "", &dto.QuickGenerateRequest{UserIdea: "lighthouse in a storm"})
	assert.NoError(t, err)
	assert.Equal(t, provider.response, res.FinalPrompt)
	assert.NotEmpty(t, res.Timestamp)

	session, _ := f.sessions.Load(context.Background(), f.id, "")
	assert.Equal(t, "lighthouse in a storm", session.Answers["subject"])
	assert.Equal(t, store.StepFinalPrompt, session.CurrentStep)
	// Category defaults fill the unset visual settings.
	assert.NotEmpty(t, session.Visual.ColorPalette)
	assert.Len(t, f.pub.generated, 1)
	assert.True(t, f.pub.generated[0].QuickMode)
}

func TestGenerateQuickRequiresIdea(t *testing.T) {
	f := newPromptFixture(t, &stubProvider{response: "ok"})

	_, err := f.prompts.GenerateQuick(context.Background(), f.id, "", &dto.QuickGenerateRequest{UserIdea: "   "})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "describe your image idea")
}

func TestHistorySavedForOwnedSession(t *testing.T) {
	provider := &stubProvider{response: "final prompt text"}
	f := newPromptFixture(t, provider)
	owner := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	_, err := f.prompts.GenerateQuick(context.Background(), f.id, owner, &dto.QuickGenerateRequest{UserIdea: "a garden"})
	assert.NoError(t, err)
	assert.Len(t, f.fake.history, 1)
	for _, h := range f.fake.history {
		assert.Equal(t, owner, h.UserId.String())
		assert.Equal(t, "final prompt text", h.FinalPrompt)
		assert.Equal(t, "Realistic Photo", h.Category)
	}
}

func TestHistoryNotSavedForAnonymous(t *testing.T) {
	f := newPromptFixture(t, &stubProvider{response: "final prompt text"})

	_, err := f.prompts.GenerateQuick(context.Background(), f.id, "", &dto.QuickGenerateRequest{UserIdea: "a garden"})
	assert.NoError(t, err)
	assert.Empty(t, f.fake.history)
}

func TestRefine(t *testing.T) {
	provider := &stubProvider{response: "first version"}
	f := newPromptFixture(t, provider)

	_, err := f.prompts.GenerateQuick(context.Background(), f.id, "", &dto.QuickGenerateRequest{UserIdea: "a garden"})
	assert.NoError(t, err)

	provider.response = "refined version with warmer light"
	res, err := f.prompts.Refine(context.Background(), f.id, "", &dto.RefinePromptRequest{Instruction: "make the light warmer"})
	assert.NoError(t, err)
	assert.Equal(t, "refined version with warmer light", res.FinalPrompt)

	session, _ := f.sessions.Load(context.Background(), f.id, "")
	assert.Equal(t, "refined version with warmer light", session.FinalPrompt)
}

func TestRefineValidation(t *testing.T) {
	f := newPromptFixture(t, &stubProvider{response: "ok"})

	_, err := f.prompts.Refine(context.Background(), f.id, "", &dto.RefinePromptRequest{Instruction: " "})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "what you want to change")

	// No final prompt generated yet.
	_, err = f.prompts.Refine(context.Background(), f.id, "", &dto.RefinePromptRequest{Instruction: "brighter"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestFinalData(t *testing.T) {
	f := newPromptFixture(t, &stubProvider{response: "the final prompt"})

	res, err := f.prompts.FinalData(context.Background(), f.id, "")
	assert.NoError(t, err)
	assert.False(t, res.Generated)

	_, _ = f.prompts.GenerateQuick(context.Background(), f.id, "", &dto.QuickGenerateRequest{UserIdea: "a garden"})
	res, err = f.prompts.FinalData(context.Background(), f.id, "")
	assert.NoError(t, err)
	assert.True(t, res.Generated)
	assert.Equal(t, "the final prompt", res.FinalPrompt)
	assert.Equal(t, 3, res.WordCount)
}

func TestGenerateFinalFillsDefaultVisualSettings(t *testing.T) {
	provider := &stubProvider{response: "A lighthouse at dusk, warm fading light over the sea."}
	f := newPromptFixture(t, provider)
	owner := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	_, _ = f.conv.Start(context.Background(), f.id, owner)
	answers := []string{"a lighthouse at dusk", "serene", "coastal cliffs", "golden hour", "85mm lens"}
	for _, answer := range answers {
		_, err := f.conv.SubmitAnswer(context.Background(), f.id, owner, &dto.SubmitAnswerRequest{Answer: answer})
		assert.NoError(t, err)
	}

	_, err := f.prompts.GenerateFinal(context.Background(), f.id, owner)
	assert.NoError(t, err)

	assert.Len(t, f.fake.history, 1)
	for _, h := range f.fake.history {
		assert.Equal(t, "Natural Sunlight/Golden Hour", h.VisualSettings.ColorPalette)
		assert.Equal(t, "Instagram Feed (4:5)", h.VisualSettings.AspectRatio)
		assert.Equal(t, "Standard (50mm)", h.VisualSettings.CameraSettings)
	}
}

func TestAnalysisPersistedWhenGenerationFails(t *testing.T) {
	provider := &stubProvider{err: errors.New("model unavailable")}
	f := newPromptFixture(t, provider)

	_, _ = f.conv.Start(context.Background(), f.id, "")
	_, _ = f.conv.Skip(context.Background(), f.id, "")

	before := f.fake.sessionUpserts
	_, err := f.prompts.GenerateFinal(context.Background(), f.id, "")
	assert.Error(t, err)
	assert.Equal(t, 1, f.analysis.calls)
	// The session state is written after analysis even though synthesis failed.
	assert.Greater(t, f.fake.sessionUpserts, before)
}
