package service

import (
	"context"
	"fmt"

	"genfy-be/internal/catalog"
	"genfy-be/internal/dto"
	"genfy-be/internal/pkg/apperrors"
	"genfy-be/pkg/store"
)

type IConversationService interface {
	Start(ctx context.Context, sessionId string, userId string) (*dto.StartChatResponse, error)
	Messages(ctx context.Context, sessionId string, userId string) (*dto.ChatMessagesResponse, error)
	CurrentQuestion(ctx context.Context, sessionId string, userId string) (*dto.CurrentQuestionResponse, error)
	SubmitAnswer(ctx context.Context, sessionId string, userId string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	Skip(ctx context.Context, sessionId string, userId string) (*dto.SkipQuestionsResponse, error)
}

type conversationService struct {
	sessionService ISessionService
}

func NewConversationService(sessionService ISessionService) IConversationService {
	return &conversationService{
		sessionService: sessionService,
	}
}

func questionResponse(cat *catalog.Category, cursor int) *dto.QuestionResponse {
	q, ok := cat.QuestionAt(cursor)
	if !ok {
		return nil
	}
	return &dto.QuestionResponse{
		Id:          q.Id,
		Text:        q.Text,
		Placeholder: q.Placeholder,
		Style:       q.Style,
		Index:       cursor,
		Total:       len(cat.Questions),
	}
}

func categoryOf(session *store.Session) (*catalog.Category, error) {
	if session.Category == "" {
		return nil, apperrors.InvalidInput("no category selected")
	}
	cat, ok := catalog.Get(session.Category)
	if !ok {
		return nil, apperrors.InvalidInput("unknown category: " + session.Category)
	}
	return cat, nil
}

func (c *conversationService) Start(ctx context.Context, sessionId string, userId string) (*dto.StartChatResponse, error) {
	session, err := c.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	cat, err := categoryOf(session)
	if err != nil {
		return nil, err
	}

	if len(session.Messages) == 0 {
		first, _ := cat.QuestionAt(0)
		welcome := fmt.Sprintf(
			"Great! Let's build your **%s** prompt. I'll ask you a few questions to craft the perfect image prompt.\n\n**Question 1:** %s\n\n_%s_",
			cat.Name, first.Text, first.Placeholder,
		)
		session.AddMessage(store.RoleAssistant, welcome)
		session.CurrentStep = store.StepChat
		if err := c.sessionService.Persist(ctx, session); err != nil {
			return nil, err
		}
	}

	return &dto.StartChatResponse{
		Messages:        session.Messages,
		CurrentQuestion: questionResponse(cat, session.Cursor),
	}, nil
}

func (c *conversationService) Messages(ctx context.Context, sessionId string, userId string) (*dto.ChatMessagesResponse, error) {
	session, err := c.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	return &dto.ChatMessagesResponse{Messages: session.Messages}, nil
}

func (c *conversationService) CurrentQuestion(ctx context.Context, sessionId string, userId string) (*dto.CurrentQuestionResponse, error) {
	session, err := c.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	// Without a category there is no questionnaire yet, so there is simply
	// no question to ask.
	if session.Category == "" {
		return &dto.CurrentQuestionResponse{}, nil
	}
	cat, err := categoryOf(session)
	if err != nil {
		return nil, err
	}

	q := questionResponse(cat, session.Cursor)
	return &dto.CurrentQuestionResponse{
		Question: q,
		Complete: q == nil,
	}, nil
}

func (c *conversationService) SubmitAnswer(ctx context.Context, sessionId string, userId string, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	session, err := c.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	if session.Category == "" {
		return &dto.SubmitAnswerResponse{Messages: session.Messages}, nil
	}
	cat, err := categoryOf(session)
	if err != nil {
		return nil, err
	}

	q, ok := cat.QuestionAt(session.Cursor)
	if !ok {
		return nil, apperrors.InvalidInput("all questions are already answered")
	}

	session.AddMessage(store.RoleUser, req.Answer)
	session.Answers[q.Id] = req.Answer
	session.Cursor++
	session.ClearChips()
	delete(session.SuggestionCache, q.Id)

	resp := dto.SubmitAnswerResponse{}
	if next, ok := cat.QuestionAt(session.Cursor); ok {
		ack := fmt.Sprintf(
			"Got it! ✔\n\n**Question %d:** %s\n\n_%s_",
			session.Cursor+1, next.Text, next.Placeholder,
		)
		session.AddMessage(store.RoleAssistant, ack)
		resp.NextQuestion = questionResponse(cat, session.Cursor)
	} else {
		resp.ShouldGeneratePrompt = true
	}

	if err := c.sessionService.Persist(ctx, session); err != nil {
		return nil, err
	}
	resp.Messages = session.Messages
	return &resp, nil
}

func (c *conversationService) Skip(ctx context.Context, sessionId string, userId string) (*dto.SkipQuestionsResponse, error) {
	session, err := c.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	cat, err := categoryOf(session)
	if err != nil {
		return nil, err
	}

	skipped := len(cat.Questions) - session.Cursor
	if skipped < 0 {
		skipped = 0
	}
	session.Cursor = len(cat.Questions)
	session.ClearChips()
	if err := c.sessionService.Persist(ctx, session); err != nil {
		return nil, err
	}

	return &dto.SkipQuestionsResponse{
		Skipped:              skipped,
		ShouldGeneratePrompt: true,
	}, nil
}
