package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"genfy-be/internal/catalog"
	"genfy-be/internal/dto"
	"genfy-be/internal/entity"
	"genfy-be/internal/pkg/apperrors"
	"genfy-be/internal/pkg/logger"
	"genfy-be/internal/repository/unitofwork"
	"genfy-be/pkg/llm"
	"genfy-be/pkg/promptgen"
	"genfy-be/pkg/store"
)

type IPromptService interface {
	GenerateFinal(ctx context.Context, sessionId string, userId string) (*dto.FinalPromptResponse, error)
	GenerateQuick(ctx context.Context, sessionId string, userId string, req *dto.QuickGenerateRequest) (*dto.QuickGenerateResponse, error)
	Refine(ctx context.Context, sessionId string, userId string, req *dto.RefinePromptRequest) (*dto.RefinePromptResponse, error)
	FinalData(ctx context.Context, sessionId string, userId string) (*dto.FinalPromptResponse, error)
}

type promptService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessionService   ISessionService
	analysisService  IAnalysisService
	registry         *llm.Registry
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewPromptService(
	uowFactory unitofwork.RepositoryFactory,
	sessionService ISessionService,
	analysisService IAnalysisService,
	registry *llm.Registry,
	publisherService IPublisherService,
	log logger.ILogger,
) IPromptService {
	return &promptService{
		uowFactory:       uowFactory,
		sessionService:   sessionService,
		analysisService:  analysisService,
		registry:         registry,
		publisherService: publisherService,
		logger:           log,
	}
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func (p *promptService) generate(ctx context.Context, session *store.Session, prompt string) (string, error) {
	provider, err := p.registry.Get(session.Provider)
	if err != nil {
		return "", err
	}

	messages := []llm.Message{
		{Role: "system", Content: promptgen.GeneratorSystemPrompt},
		{Role: "user", Content: prompt},
	}
	out, err := provider.Chat(ctx, messages,
		llm.WithTemperature(promptgen.GenerationTemperature),
		llm.WithMaxTokens(promptgen.GenerationMaxTokens),
	)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", apperrors.InvalidInput("generated prompt is empty")
	}
	return out, nil
}

func (p *promptService) saveHistory(ctx context.Context, session *store.Session) error {
	ownerId, err := uuid.Parse(session.UserID)
	if err != nil {
		// Anonymous sessions keep their prompt in the session only.
		return nil
	}

	history := entity.PromptHistory{
		Id:             uuid.New(),
		UserId:         ownerId,
		Category:       session.Category,
		UserIdea:       session.Idea,
		LlmUsed:        session.Provider,
		Answers:        session.Answers,
		FinalPrompt:    session.FinalPrompt,
		VisualSettings: session.Visual,
		Files:          session.UploadedFiles,
		CreatedAt:      time.Now(),
	}

	uow := p.uowFactory.NewUnitOfWork(ctx)
	return uow.PromptHistoryRepository().Create(ctx, &history)
}

func (p *promptService) publishGenerated(ctx context.Context, session *store.Session, quick bool) {
	event := dto.PromptGeneratedEvent{
		SessionId:   session.ID,
		UserId:      session.UserID,
		Category:    session.Category,
		ModelUsed:   session.Provider,
		WordCount:   wordCount(session.FinalPrompt),
		QuickMode:   quick,
		GeneratedAt: time.Now(),
	}
	if err := p.publisherService.PublishPromptGenerated(ctx, event); err != nil {
		p.logger.Warn("prompt", "failed to publish prompt generated event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *promptService) GenerateFinal(ctx context.Context, sessionId string, userId string) (*dto.FinalPromptResponse, error) {
	session, err := p.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	cat, err := categoryOf(session)
	if err != nil {
		return nil, err
	}

	session.AddMessage(store.RoleAssistant, "All questions answered! Generating your professional prompt...")

	userContext := session.Idea
	if userContext == "" {
		userContext = session.Answers[catalog.PrimaryField(session.Category)]
	}
	p.analysisService.AnalyzeReferences(ctx, session, userContext)
	p.persistAnalysis(ctx, session)

	finalPrompt, err := p.generate(ctx, session, promptgen.BuildFinalPrompt(session, cat))
	if err != nil {
		return nil, err
	}

	session.FinalPrompt = finalPrompt
	session.CurrentStep = store.StepFinalPrompt
	applyDefaultVisual(session, cat)
	if err := p.sessionService.Persist(ctx, session); err != nil {
		return nil, err
	}
	if err := p.saveHistory(ctx, session); err != nil {
		p.logger.Error("prompt", "failed to save prompt history", map[string]interface{}{"error": err.Error(), "session_id": session.ID})
	}
	p.publishGenerated(ctx, session, false)

	return p.finalResponse(session), nil
}

func (p *promptService) GenerateQuick(ctx context.Context, sessionId string, userId string, req *dto.QuickGenerateRequest) (*dto.QuickGenerateResponse, error) {
	idea := strings.TrimSpace(req.UserIdea)
	if idea == "" {
		return nil, apperrors.InvalidInput("Please describe your image idea before continuing")
	}

	session, err := p.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	cat, err := categoryOf(session)
	if err != nil {
		return nil, err
	}

	session.Idea = idea
	session.Answers[catalog.PrimaryField(session.Category)] = idea

	p.analysisService.AnalyzeReferences(ctx, session, idea)
	p.persistAnalysis(ctx, session)

	finalPrompt, err := p.generate(ctx, session, promptgen.BuildQuickPrompt(session))
	if err != nil {
		return nil, err
	}

	session.FinalPrompt = finalPrompt
	session.CurrentStep = store.StepFinalPrompt
	applyDefaultVisual(session, cat)

	if err := p.sessionService.Persist(ctx, session); err != nil {
		return nil, err
	}
	if err := p.saveHistory(ctx, session); err != nil {
		p.logger.Error("prompt", "failed to save prompt history", map[string]interface{}{"error": err.Error(), "session_id": session.ID})
	}
	p.publishGenerated(ctx, session, true)

	return &dto.QuickGenerateResponse{
		FinalPrompt: finalPrompt,
		Timestamp:   time.Now().Format(time.RFC3339),
	}, nil
}

// persistAnalysis writes the session right after reference analysis so
// analyzed flags survive even when the synthesis step fails afterwards.
func (p *promptService) persistAnalysis(ctx context.Context, session *store.Session) {
	if err := p.sessionService.Persist(ctx, session); err != nil {
		p.logger.Warn("prompt", "failed to persist analysis results", map[string]interface{}{"error": err.Error(), "session_id": session.ID})
	}
}

// applyDefaultVisual fills unset visual settings from the category defaults so
// generated prompts carry a complete presentation record.
func applyDefaultVisual(session *store.Session, cat *catalog.Category) {
	if session.Visual.ColorPalette == "" {
		session.Visual.ColorPalette = cat.Defaults.ColorPalette
	}
	if session.Visual.AspectRatio == "" {
		session.Visual.AspectRatio = cat.Defaults.AspectRatio
	}
	if session.Visual.CameraSettings == "" {
		session.Visual.CameraSettings = cat.Defaults.CameraSettings
	}
	if session.Visual.ImagePurpose == "" {
		session.Visual.ImagePurpose = cat.Defaults.ImagePurpose
	}
}

func (p *promptService) Refine(ctx context.Context, sessionId string, userId string, req *dto.RefinePromptRequest) (*dto.RefinePromptResponse, error) {
	instruction := strings.TrimSpace(req.Instruction)
	if instruction == "" {
		return nil, apperrors.InvalidInput("Please enter what you want to change")
	}

	session, err := p.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	if session.FinalPrompt == "" {
		return nil, apperrors.InvalidInput("no prompt to refine yet")
	}

	refined, err := p.generate(ctx, session, promptgen.BuildRefinePrompt(session, instruction))
	if err != nil {
		return nil, err
	}

	session.FinalPrompt = refined
	if err := p.sessionService.Persist(ctx, session); err != nil {
		return nil, err
	}

	return &dto.RefinePromptResponse{FinalPrompt: refined}, nil
}

func (p *promptService) FinalData(ctx context.Context, sessionId string, userId string) (*dto.FinalPromptResponse, error) {
	session, err := p.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	return p.finalResponse(session), nil
}

func (p *promptService) finalResponse(session *store.Session) *dto.FinalPromptResponse {
	return &dto.FinalPromptResponse{
		FinalPrompt: session.FinalPrompt,
		Category:    session.Category,
		LLM:         session.Provider,
		Answers:     session.Answers,
		Visual:      session.Visual,
		WordCount:   wordCount(session.FinalPrompt),
		Generated:   session.FinalPrompt != "",
	}
}
