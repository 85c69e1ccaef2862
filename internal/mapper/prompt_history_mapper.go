package mapper

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"genfy-be/internal/entity"
	"genfy-be/internal/model"
	"genfy-be/pkg/store"
)

type PromptHistoryMapper struct{}

func NewPromptHistoryMapper() *PromptHistoryMapper {
	return &PromptHistoryMapper{}
}

func (m *PromptHistoryMapper) ToEntity(h *model.PromptHistory) *entity.PromptHistory {
	if h == nil {
		return nil
	}

	answers := map[string]string{}
	if len(h.Answers) > 0 {
		_ = json.Unmarshal(h.Answers, &answers)
	}
	var visual store.VisualSettings
	if len(h.VisualSettings) > 0 {
		_ = json.Unmarshal(h.VisualSettings, &visual)
	}
	var files []store.UploadedFile
	if len(h.Files) > 0 {
		_ = json.Unmarshal(h.Files, &files)
	}

	var deletedAt *time.Time
	if h.DeletedAt.Valid {
		t := h.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !h.UpdatedAt.IsZero() {
		t := h.UpdatedAt
		updatedAt = &t
	}

	return &entity.PromptHistory{
		Id:                h.Id,
		UserId:            h.UserId,
		Category:          h.Category,
		UserIdea:          h.UserIdea,
		LlmUsed:           h.LlmUsed,
		Answers:           answers,
		FinalPrompt:       h.FinalPrompt,
		VisualSettings:    visual,
		GeneratedImageUrl: h.GeneratedImageUrl,
		Files:             files,
		CreatedAt:         h.CreatedAt,
		UpdatedAt:         updatedAt,
		DeletedAt:         deletedAt,
		IsDeleted:         h.DeletedAt.Valid,
	}
}

func (m *PromptHistoryMapper) ToModel(h *entity.PromptHistory) *model.PromptHistory {
	if h == nil {
		return nil
	}

	answers, _ := json.Marshal(h.Answers)
	visual, _ := json.Marshal(h.VisualSettings)
	var files datatypes.JSON
	if h.Files != nil {
		files, _ = json.Marshal(h.Files)
	}

	var deletedAt gorm.DeletedAt
	if h.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *h.DeletedAt, Valid: true}
	} else if h.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if h.UpdatedAt != nil {
		updatedAt = *h.UpdatedAt
	}

	return &model.PromptHistory{
		Id:                h.Id,
		UserId:            h.UserId,
		Category:          h.Category,
		UserIdea:          h.UserIdea,
		LlmUsed:           h.LlmUsed,
		Answers:           answers,
		FinalPrompt:       h.FinalPrompt,
		VisualSettings:    visual,
		GeneratedImageUrl: h.GeneratedImageUrl,
		Files:             files,
		CreatedAt:         h.CreatedAt,
		UpdatedAt:         updatedAt,
		DeletedAt:         deletedAt,
	}
}

func (m *PromptHistoryMapper) ToEntities(items []*model.PromptHistory) []*entity.PromptHistory {
	entities := make([]*entity.PromptHistory, len(items))
	for i, h := range items {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
