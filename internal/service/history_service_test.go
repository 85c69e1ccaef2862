package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"genfy-be/internal/dto"
	"genfy-be/internal/entity"
	"genfy-be/internal/pkg/apperrors"
)

func seedHistory(fake *fakeStore, userId uuid.UUID, prompt string) uuid.UUID {
	id := uuid.New()
	fake.history[id] = &entity.PromptHistory{
		Id:          id,
		UserId:      userId,
		Category:    "Realistic Photo",
		UserIdea:    "a harbor",
		LlmUsed:     "mistral",
		FinalPrompt: prompt,
		Answers:     map[string]string{"subject": "a harbor"},
		CreatedAt:   time.Now(),
	}
	return id
}

func TestHistoryList(t *testing.T) {
	fake := newFakeStore()
	svc := NewHistoryService(&fakeFactory{store: fake})
	owner := uuid.New()

	seedHistory(fake, owner, "prompt one has five words")
	seedHistory(fake, owner, "prompt two")
	seedHistory(fake, uuid.New(), "someone else's prompt")

	items, err := svc.List(context.Background(), owner, "")
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, "Realistic Photo", item.Category)
		assert.NotZero(t, item.WordCount)
	}

	filtered, err := svc.List(context.Background(), owner, "Logo")
	assert.NoError(t, err)
	assert.Empty(t, filtered)

	matched, err := svc.List(context.Background(), owner, "Realistic Photo")
	assert.NoError(t, err)
	assert.Len(t, matched, 2)
}

func TestHistoryShowOwnership(t *testing.T) {
	fake := newFakeStore()
	svc := NewHistoryService(&fakeFactory{store: fake})
	owner := uuid.New()
	id := seedHistory(fake, owner, "the prompt")

	detail, err := svc.Show(context.Background(), owner, id)
	assert.NoError(t, err)
	assert.Equal(t, "the prompt", detail.PromptText)
	assert.Equal(t, "a harbor", detail.Answers["subject"])

	_, err = svc.Show(context.Background(), uuid.New(), id)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Show(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestHistoryDelete(t *testing.T) {
	fake := newFakeStore()
	svc := NewHistoryService(&fakeFactory{store: fake})
	owner := uuid.New()
	id := seedHistory(fake, owner, "the prompt")

	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), id), apperrors.ErrForbidden)
	assert.NoError(t, svc.Delete(context.Background(), owner, id))
	assert.Empty(t, fake.history)
}

func TestHistoryClear(t *testing.T) {
	fake := newFakeStore()
	svc := NewHistoryService(&fakeFactory{store: fake})
	owner := uuid.New()

	seedHistory(fake, owner, "one")
	seedHistory(fake, owner, "two")
	other := seedHistory(fake, uuid.New(), "keep me")

	assert.NoError(t, svc.Clear(context.Background(), owner))
	assert.Len(t, fake.history, 1)
	assert.Contains(t, fake.history, other)
}

func TestHistoryAttachImage(t *testing.T) {
	fake := newFakeStore()
	svc := NewHistoryService(&fakeFactory{store: fake})
	owner := uuid.New()
	id := seedHistory(fake, owner, "the prompt")

	err := svc.AttachImage(context.Background(), owner, id, &dto.AttachImageRequest{ImageUrl: "https://cdn.example.com/render.png"})
	assert.NoError(t, err)

	detail, err := svc.Show(context.Background(), owner, id)
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/render.png", detail.GeneratedImageUrl)

	err = svc.AttachImage(context.Background(), uuid.New(), id, &dto.AttachImageRequest{ImageUrl: "https://cdn.example.com/other.png"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
