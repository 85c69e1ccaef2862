package service

import (
	"context"
	"strings"
	"time"

	"genfy-be/internal/pkg/logger"
	"genfy-be/pkg/storage"
	"genfy-be/pkg/store"
	"genfy-be/pkg/vision"
)

type IAnalysisService interface {
	// AnalyzeReferences runs vision analysis on every uploaded image that has
	// not been analyzed yet. Failures are recorded on the file and never abort
	// the caller. The session is mutated in place; the caller persists it.
	AnalyzeReferences(ctx context.Context, session *store.Session, userContext string)
}

type analysisService struct {
	client  *vision.Client
	planner *vision.Planner
	storage *storage.LocalStorage
	logger  logger.ILogger
}

func NewAnalysisService(client *vision.Client, files *storage.LocalStorage, log logger.ILogger) IAnalysisService {
	return &analysisService{
		client:  client,
		planner: vision.NewPlanner(client),
		storage: files,
		logger:  log,
	}
}

func (a *analysisService) AnalyzeReferences(ctx context.Context, session *store.Session, userContext string) {
	pending := session.UnanalyzedFiles()
	if len(pending) == 0 {
		return
	}
	if a.client == nil {
		a.logger.Warn("vision", "no vision client configured, skipping reference analysis", map[string]interface{}{"session_id": session.ID})
		return
	}

	// One planning pass decides the focus areas for every file in this batch.
	plan := a.planner.Plan(ctx, userContext, session.Category)
	a.logger.Info("vision", "focus areas planned", map[string]interface{}{
		"session_id":  session.ID,
		"focus_areas": strings.Join(plan.FocusAreas, ", "),
		"reasoning":   plan.Reasoning,
	})

	prompt := vision.BuildAnalysisPrompt(plan.FocusAreas, userContext)

	for _, idx := range pending {
		file := &session.UploadedFiles[idx]
		if !strings.HasPrefix(file.MimeType, "image/") {
			continue
		}

		data, err := a.storage.Read(file.Locator)
		if err != nil {
			file.AnalysisError = err.Error()
			a.logger.Warn("vision", "failed to read reference file", map[string]interface{}{"file": file.Name, "error": err.Error()})
			continue
		}

		analysis, err := a.client.DescribeImage(ctx, data, file.MimeType, prompt)
		if err != nil {
			file.AnalysisError = err.Error()
			a.logger.Warn("vision", "analysis failed", map[string]interface{}{"file": file.Name, "error": err.Error()})
			continue
		}

		file.Analyzed = true
		file.Summary = analysis
		file.AnalyzedBy = a.client.VisionModel
		file.FocusAreas = plan.FocusAreas
		file.AnalysisError = ""

		session.ReferenceAnalyses = append(session.ReferenceAnalyses, store.ReferenceAnalysis{
			Filename:   file.Name,
			Analysis:   analysis,
			FocusAreas: plan.FocusAreas,
			Timestamp:  time.Now(),
		})
		a.logger.Info("vision", "analysis complete", map[string]interface{}{"file": file.Name})
	}
}
