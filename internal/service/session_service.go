package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"genfy-be/internal/dto"
	"genfy-be/internal/entity"
	"genfy-be/internal/pkg/apperrors"
	"genfy-be/internal/pkg/logger"
	"genfy-be/internal/repository/memory"
	"genfy-be/internal/repository/specification"
	"genfy-be/internal/repository/unitofwork"
	"genfy-be/pkg/llm"
	"genfy-be/pkg/store"
)

// providerNames lists every provider the registry knows how to build.
var providerNames = []string{"mistral", "anthropic", "ollama"}

type ISessionService interface {
	Create(ctx context.Context) (*dto.CreateSessionResponse, error)
	// Load fetches a session and enforces ownership: an unowned session is
	// claimed by the caller, a session owned by someone else is rejected.
	Load(ctx context.Context, sessionId string, userId string) (*store.Session, error)
	Persist(ctx context.Context, session *store.Session) error
	State(ctx context.Context, sessionId string, userId string) (*dto.SessionStateResponse, error)
	Delete(ctx context.Context, sessionId string, userId string) error
	SelectLLM(ctx context.Context, sessionId string, userId string, req *dto.SelectLLMRequest) error
	AvailableLLMs() *dto.AvailableLLMsResponse
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	cache            *memory.SessionRepository
	registry         *llm.Registry
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.SessionRepository,
	registry *llm.Registry,
	publisherService IPublisherService,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		cache:            cache,
		registry:         registry,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *sessionService) Create(ctx context.Context) (*dto.CreateSessionResponse, error) {
	session := store.New(uuid.NewString(), s.registry.DefaultName())
	if err := s.Persist(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("session", "session created", map[string]interface{}{"session_id": session.ID})
	return &dto.CreateSessionResponse{
		SessionId: session.ID,
		LLM:       session.Provider,
	}, nil
}

func (s *sessionService) Load(ctx context.Context, sessionId string, userId string) (*store.Session, error) {
	session, found := s.cache.Get(sessionId)
	if !found {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		record, err := uow.SessionRecordRepository().FindOne(ctx, specification.ByKey{Key: sessionId})
		if err != nil {
			return nil, err
		}
		if record == nil {
			// An unknown id starts a fresh session under that id.
			session = store.New(sessionId, s.registry.DefaultName())
			if err := s.Persist(ctx, session); err != nil {
				return nil, err
			}
			s.logger.Info("session", "session created on first access", map[string]interface{}{"session_id": sessionId})
		} else {
			session = record.State
			s.cache.Save(session)
		}
	}

	if session.UserID != "" && session.UserID != userId {
		return nil, apperrors.Forbidden("session belongs to another user")
	}
	if session.UserID == "" && userId != "" {
		session.UserID = userId
		if err := s.Persist(ctx, session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Persist writes through: the in-memory cache first, then the database row.
func (s *sessionService) Persist(ctx context.Context, session *store.Session) error {
	s.cache.Save(session)

	record := entity.SessionRecord{
		Id:        session.ID,
		State:     session,
		CreatedAt: session.CreatedAt,
	}
	if session.UserID != "" {
		ownerId, err := uuid.Parse(session.UserID)
		if err == nil {
			record.UserId = ownerId
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SessionRecordRepository().Upsert(ctx, &record)
}

func (s *sessionService) State(ctx context.Context, sessionId string, userId string) (*dto.SessionStateResponse, error) {
	session, err := s.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	return &dto.SessionStateResponse{
		SessionId:     session.ID,
		CurrentStep:   session.CurrentStep,
		Category:      session.Category,
		LLM:           session.Provider,
		QuestionIndex: session.Cursor,
		Answers:       session.Answers,
		Visual:        session.Visual,
		FileCount:     len(session.UploadedFiles),
		HasFinal:      session.FinalPrompt != "",
		CreatedAt:     session.CreatedAt,
	}, nil
}

func (s *sessionService) Delete(ctx context.Context, sessionId string, userId string) error {
	session, err := s.Load(ctx, sessionId, userId)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRecordRepository().Delete(ctx, sessionId); err != nil {
		return err
	}
	s.cache.Delete(sessionId)

	event := dto.SessionDeletedEvent{
		SessionId: sessionId,
		UserId:    session.UserID,
		DeletedAt: time.Now(),
	}
	if err := s.publisherService.PublishSessionDeleted(ctx, event); err != nil {
		s.logger.Warn("session", "failed to publish session deleted event", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

func (s *sessionService) SelectLLM(ctx context.Context, sessionId string, userId string, req *dto.SelectLLMRequest) error {
	if _, err := s.registry.Get(req.LLM); err != nil {
		return apperrors.InvalidInput("unknown llm provider: " + req.LLM)
	}
	session, err := s.Load(ctx, sessionId, userId)
	if err != nil {
		return err
	}
	session.Provider = req.LLM
	return s.Persist(ctx, session)
}

func (s *sessionService) AvailableLLMs() *dto.AvailableLLMsResponse {
	return &dto.AvailableLLMsResponse{
		Default:   s.registry.DefaultName(),
		Providers: s.registry.Available(providerNames),
	}
}
