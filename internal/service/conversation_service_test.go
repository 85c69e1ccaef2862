package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"genfy-be/internal/catalog"
	"genfy-be/internal/dto"
	"genfy-be/internal/pkg/apperrors"
	"genfy-be/pkg/store"
)

func newChatFixture(t *testing.T) (ISessionService, IConversationService, string) {
	t.Helper()
	sessions := newTestSessionService(newFakeStore(), &stubProvider{response: "ok"}, &stubPublisher{})
	conv := NewConversationService(sessions)

	created, err := sessions.Create(context.Background())
	assert.NoError(t, err)

	cats := NewCategoryService(sessions)
	_, err = cats.Select(context.Background(), created.SessionId, "", &dto.SelectCategoryRequest{Category: "Realistic Photo"})
	assert.NoError(t, err)

	return sessions, conv, created.SessionId
}

func TestStartChatAddsWelcome(t *testing.T) {
	sessions, conv, id := newChatFixture(t)

	res, err := conv.Start(context.Background(), id, "")
	assert.NoError(t, err)
	assert.Len(t, res.Messages, 1)
	assert.Contains(t, res.Messages[0].Content, "**Realistic Photo**")
	assert.Contains(t, res.Messages[0].Content, "**Question 1:**")
	assert.Equal(t, 0, res.CurrentQuestion.Index)

	session, _ := sessions.Load(context.Background(), id, "")
	assert.Equal(t, store.StepChat, session.CurrentStep)

	// Starting again must not duplicate the welcome.
	res, err = conv.Start(context.Background(), id, "")
	assert.NoError(t, err)
	assert.Len(t, res.Messages, 1)
}

func TestStartChatWithoutCategory(t *testing.T) {
	sessions := newTestSessionService(newFakeStore(), &stubProvider{response: "ok"}, &stubPublisher{})
	conv := NewConversationService(sessions)
	created, _ := sessions.Create(context.Background())

	_, err := conv.Start(context.Background(), created.SessionId, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	// Polling and answering before a category is picked is harmless.
	current, err := conv.CurrentQuestion(context.Background(), created.SessionId, "")
	assert.NoError(t, err)
	assert.Nil(t, current.Question)
	assert.False(t, current.Complete)

	res, err := conv.SubmitAnswer(context.Background(), created.SessionId, "", &dto.SubmitAnswerRequest{Answer: "a fox"})
	assert.NoError(t, err)
	assert.Nil(t, res.NextQuestion)
	assert.False(t, res.ShouldGeneratePrompt)
	assert.Empty(t, res.Messages)
}

func TestSubmitAnswerAdvances(t *testing.T) {
	sessions, conv, id := newChatFixture(t)
	_, err := conv.Start(context.Background(), id, "")
	assert.NoError(t, err)

	res, err := conv.SubmitAnswer(context.Background(), id, "", &dto.SubmitAnswerRequest{Answer: "a red fox in snow"})
	assert.NoError(t, err)
	assert.False(t, res.ShouldGeneratePrompt)
	assert.Equal(t, 1, res.NextQuestion.Index)
	assert.Contains(t, res.Messages[len(res.Messages)-1].Content, "**Question 2:**")

	session, _ := sessions.Load(context.Background(), id, "")
	assert.Equal(t, "a red fox in snow", session.Answers["subject"])
	assert.Equal(t, 1, session.Cursor)
}

func TestSubmitAnswerClearsSuggestionState(t *testing.T) {
	sessions, conv, id := newChatFixture(t)
	_, _ = conv.Start(context.Background(), id, "")

	session, _ := sessions.Load(context.Background(), id, "")
	session.AddChip("misty forest")
	session.SuggestionCache["subject"] = []string{"misty forest", "city at dusk"}
	assert.NoError(t, sessions.Persist(context.Background(), session))

	_, err := conv.SubmitAnswer(context.Background(), id, "", &dto.SubmitAnswerRequest{Answer: "misty forest"})
	assert.NoError(t, err)

	session, _ = sessions.Load(context.Background(), id, "")
	assert.Empty(t, session.SelectedChips)
	assert.NotContains(t, session.SuggestionCache, "subject")
}

func TestConversationRunsToCompletion(t *testing.T) {
	_, conv, id := newChatFixture(t)
	_, _ = conv.Start(context.Background(), id, "")

	cat, _ := catalog.Get("Realistic Photo")
	for i := range cat.Questions {
		res, err := conv.SubmitAnswer(context.Background(), id, "", &dto.SubmitAnswerRequest{Answer: fmt.Sprintf("answer %d", i)})
		assert.NoError(t, err)
		if i == len(cat.Questions)-1 {
			assert.True(t, res.ShouldGeneratePrompt)
			assert.Nil(t, res.NextQuestion)
		} else {
			assert.False(t, res.ShouldGeneratePrompt)
		}
	}

	// No more questions to answer.
	_, err := conv.SubmitAnswer(context.Background(), id, "", &dto.SubmitAnswerRequest{Answer: "extra"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	q, err := conv.CurrentQuestion(context.Background(), id, "")
	assert.NoError(t, err)
	assert.True(t, q.Complete)
	assert.Nil(t, q.Question)
}

func TestSkipJumpsToGeneration(t *testing.T) {
	sessions, conv, id := newChatFixture(t)
	_, _ = conv.Start(context.Background(), id, "")
	_, _ = conv.SubmitAnswer(context.Background(), id, "", &dto.SubmitAnswerRequest{Answer: "a lighthouse"})

	res, err := conv.Skip(context.Background(), id, "")
	assert.NoError(t, err)
	assert.True(t, res.ShouldGeneratePrompt)

	cat, _ := catalog.Get("Realistic Photo")
	assert.Equal(t, len(cat.Questions)-1, res.Skipped)

	session, _ := sessions.Load(context.Background(), id, "")
	assert.Equal(t, len(cat.Questions), session.Cursor)
}
