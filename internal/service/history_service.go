package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"genfy-be/internal/dto"
	"genfy-be/internal/entity"
	"genfy-be/internal/pkg/apperrors"
	"genfy-be/internal/repository/specification"
	"genfy-be/internal/repository/unitofwork"
)

const historyListLimit = 50

type IHistoryService interface {
	List(ctx context.Context, userId uuid.UUID, category string) ([]*dto.HistoryItemResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.HistoryDetailResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Clear(ctx context.Context, userId uuid.UUID) error
	AttachImage(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.AttachImageRequest) error
}

type historyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHistoryService(uowFactory unitofwork.RepositoryFactory) IHistoryService {
	return &historyService{
		uowFactory: uowFactory,
	}
}

func (h *historyService) List(ctx context.Context, userId uuid.UUID, category string) ([]*dto.HistoryItemResponse, error) {
	specs := []specification.Specification{
		specification.ByUserId{UserId: userId},
		specification.Pagination{Limit: historyListLimit},
	}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}

	uow := h.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.PromptHistoryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.HistoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &dto.HistoryItemResponse{
			Id:                item.Id,
			Category:          item.Category,
			PromptText:        item.FinalPrompt,
			ModelUsed:         item.LlmUsed,
			WordCount:         len(strings.Fields(item.FinalPrompt)),
			GeneratedImageUrl: item.GeneratedImageUrl,
			CreatedAt:         item.CreatedAt,
		})
	}
	return out, nil
}

func (h *historyService) find(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, id uuid.UUID) (*entity.PromptHistory, error) {
	item, err := uow.PromptHistoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NotFound("history entry not found")
	}
	if item.UserId != userId {
		return nil, apperrors.Forbidden("history entry belongs to another user")
	}
	return item, nil
}

func (h *historyService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.HistoryDetailResponse, error) {
	uow := h.uowFactory.NewUnitOfWork(ctx)
	item, err := h.find(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	return &dto.HistoryDetailResponse{
		Id:                item.Id,
		Category:          item.Category,
		UserIdea:          item.UserIdea,
		PromptText:        item.FinalPrompt,
		ModelUsed:         item.LlmUsed,
		Answers:           item.Answers,
		Visual:            item.VisualSettings,
		Files:             item.Files,
		GeneratedImageUrl: item.GeneratedImageUrl,
		CreatedAt:         item.CreatedAt,
	}, nil
}

func (h *historyService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := h.uowFactory.NewUnitOfWork(ctx)
	if _, err := h.find(ctx, uow, userId, id); err != nil {
		return err
	}
	return uow.PromptHistoryRepository().Delete(ctx, id)
}

func (h *historyService) AttachImage(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.AttachImageRequest) error {
	uow := h.uowFactory.NewUnitOfWork(ctx)
	item, err := h.find(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	item.GeneratedImageUrl = req.ImageUrl
	return uow.PromptHistoryRepository().Update(ctx, item)
}

func (h *historyService) Clear(ctx context.Context, userId uuid.UUID) error {
	uow := h.uowFactory.NewUnitOfWork(ctx)
	return uow.PromptHistoryRepository().DeleteAllByUserId(ctx, userId)
}
