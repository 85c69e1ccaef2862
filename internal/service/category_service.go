package service

import (
	"context"

	"genfy-be/internal/catalog"
	"genfy-be/internal/dto"
	"genfy-be/internal/pkg/apperrors"
	"genfy-be/pkg/store"
)

type ICategoryService interface {
	List(ctx context.Context) []*dto.CategoryResponse
	Select(ctx context.Context, sessionId string, userId string, req *dto.SelectCategoryRequest) (*dto.SelectCategoryResponse, error)
	VisualOptions(ctx context.Context) *dto.VisualOptionsResponse
	SaveVisualSettings(ctx context.Context, sessionId string, userId string, req *dto.SaveVisualSettingsRequest) error
}

type categoryService struct {
	sessionService ISessionService
}

func NewCategoryService(sessionService ISessionService) ICategoryService {
	return &categoryService{
		sessionService: sessionService,
	}
}

func (c *categoryService) List(ctx context.Context) []*dto.CategoryResponse {
	categories := catalog.All()
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, &dto.CategoryResponse{
			Name:          cat.Name,
			Key:           cat.Key,
			Description:   cat.Description,
			Color:         cat.Color,
			QuestionCount: len(cat.Questions),
		})
	}
	return out
}

func (c *categoryService) Select(ctx context.Context, sessionId string, userId string, req *dto.SelectCategoryRequest) (*dto.SelectCategoryResponse, error) {
	cat, ok := catalog.Get(req.Category)
	if !ok {
		return nil, apperrors.InvalidInput("unknown category: " + req.Category)
	}

	session, err := c.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}

	session.Category = cat.Name
	session.Idea = req.UserIdea
	session.CurrentStep = store.StepVisualSettings

	// Changing category restarts the conversation.
	session.Cursor = 0
	session.Answers = make(map[string]string)
	session.Messages = make([]store.ChatMessage, 0)
	session.ClearChips()
	session.SuggestionCache = make(map[string][]string)
	session.FinalPrompt = ""

	if err := c.sessionService.Persist(ctx, session); err != nil {
		return nil, err
	}
	return &dto.SelectCategoryResponse{
		Category:    session.Category,
		CurrentStep: session.CurrentStep,
	}, nil
}

func (c *categoryService) VisualOptions(ctx context.Context) *dto.VisualOptionsResponse {
	return &dto.VisualOptionsResponse{
		ColorPalettes: catalog.ColorPalettes,
		AspectRatios:  catalog.AspectRatios,
		CameraAngles:  catalog.CameraSettings,
		ImagePurposes: catalog.ImagePurposes,
	}
}

func (c *categoryService) SaveVisualSettings(ctx context.Context, sessionId string, userId string, req *dto.SaveVisualSettingsRequest) error {
	session, err := c.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return err
	}

	catalog.ApplyVisualSettings(session, store.VisualSettings{
		ColorPalette:   req.ColorPalette,
		AspectRatio:    req.AspectRatio,
		CameraSettings: req.CameraSettings,
		ImagePurpose:   req.ImagePurpose,
	})
	if session.CurrentStep == store.StepVisualSettings {
		session.CurrentStep = store.StepChat
	}
	return c.sessionService.Persist(ctx, session)
}
