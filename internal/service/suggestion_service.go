package service

import (
	"context"
	"strings"

	"genfy-be/internal/dto"
	"genfy-be/internal/pkg/apperrors"
	"genfy-be/internal/pkg/logger"
	"genfy-be/pkg/llm"
	"genfy-be/pkg/promptgen"
)

type ISuggestionService interface {
	Get(ctx context.Context, sessionId string, userId string, refresh int, currentInput string) (*dto.SuggestionsResponse, error)
	Toggle(ctx context.Context, sessionId string, userId string, req *dto.ToggleSuggestionRequest) (*dto.ToggleSuggestionResponse, error)
	Selected(ctx context.Context, sessionId string, userId string) (*dto.SelectedSuggestionsResponse, error)
	Clear(ctx context.Context, sessionId string, userId string) error
}

type suggestionService struct {
	sessionService ISessionService
	registry       *llm.Registry
	logger         logger.ILogger
}

func NewSuggestionService(
	sessionService ISessionService,
	registry *llm.Registry,
	log logger.ILogger,
) ISuggestionService {
	return &suggestionService{
		sessionService: sessionService,
		registry:       registry,
		logger:         log,
	}
}

func (s *suggestionService) Get(ctx context.Context, sessionId string, userId string, refresh int, currentInput string) (*dto.SuggestionsResponse, error) {
	session, err := s.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	cat, err := categoryOf(session)
	if err != nil {
		return nil, err
	}
	q, ok := cat.QuestionAt(session.Cursor)
	if !ok {
		return nil, apperrors.InvalidInput("all questions are already answered")
	}

	// Cached options are reused only for the initial fetch. A refresh always
	// asks the model again with a rotated variation style.
	if refresh == 0 {
		if cached, ok := session.SuggestionCache[q.Id]; ok && len(cached) > 0 {
			return &dto.SuggestionsResponse{
				QuestionId:  q.Id,
				Suggestions: cached,
				FromCache:   true,
			}, nil
		}
	}

	// Suggestions are decorative. Any provider trouble degrades to an empty
	// list so the conversation keeps moving.
	provider, err := s.registry.Get(session.Provider)
	if err != nil {
		s.logger.Error("suggestions", "no provider available", map[string]interface{}{"error": err.Error(), "question": q.Id})
		return &dto.SuggestionsResponse{QuestionId: q.Id, Suggestions: []string{}}, nil
	}

	prompt := promptgen.BuildSuggestionPrompt(session, cat, q, session.Cursor, currentInput, refresh)
	messages := []llm.Message{
		{Role: "system", Content: promptgen.SuggestionSystemPrompt},
		{Role: "user", Content: prompt},
	}
	raw, err := provider.Chat(ctx, messages,
		llm.WithTemperature(promptgen.SuggestionTemperature(refresh)),
		llm.WithMaxTokens(promptgen.SuggestionMaxTokens),
	)
	if err != nil {
		s.logger.Error("suggestions", "llm call failed", map[string]interface{}{"error": err.Error(), "question": q.Id})
		return &dto.SuggestionsResponse{QuestionId: q.Id, Suggestions: []string{}}, nil
	}

	suggestions := promptgen.ParseSuggestions(raw)
	session.SuggestionCache[q.Id] = suggestions
	if err := s.sessionService.Persist(ctx, session); err != nil {
		return nil, err
	}

	return &dto.SuggestionsResponse{
		QuestionId:  q.Id,
		Suggestions: suggestions,
	}, nil
}

func (s *suggestionService) Toggle(ctx context.Context, sessionId string, userId string, req *dto.ToggleSuggestionRequest) (*dto.ToggleSuggestionResponse, error) {
	session, err := s.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}

	session.ToggleChip(req.Suggestion)
	if err := s.sessionService.Persist(ctx, session); err != nil {
		return nil, err
	}

	return &dto.ToggleSuggestionResponse{
		Selected: session.SelectedChips,
		Combined: strings.Join(session.SelectedChips, ", "),
	}, nil
}

func (s *suggestionService) Selected(ctx context.Context, sessionId string, userId string) (*dto.SelectedSuggestionsResponse, error) {
	session, err := s.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	return &dto.SelectedSuggestionsResponse{Selected: session.SelectedChips}, nil
}

func (s *suggestionService) Clear(ctx context.Context, sessionId string, userId string) error {
	session, err := s.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return err
	}
	session.ClearChips()
	return s.sessionService.Persist(ctx, session)
}
