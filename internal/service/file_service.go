package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"genfy-be/internal/dto"
	"genfy-be/internal/pkg/apperrors"
	"genfy-be/internal/pkg/logger"
	"genfy-be/pkg/storage"
	"genfy-be/pkg/store"
)

const maxUploadSize = 10 * 1024 * 1024

type IFileService interface {
	Upload(ctx context.Context, sessionId string, userId string, files []*multipart.FileHeader) (*dto.UploadFilesResponse, error)
	List(ctx context.Context, sessionId string, userId string) (*dto.UploadFilesResponse, error)
	DeleteByIndex(ctx context.Context, sessionId string, userId string, index int) error
	ReferenceContext(ctx context.Context, sessionId string, userId string) (*dto.ReferenceContextResponse, error)
}

type fileService struct {
	sessionService ISessionService
	storage        *storage.LocalStorage
	logger         logger.ILogger
}

func NewFileService(sessionService ISessionService, files *storage.LocalStorage, log logger.ILogger) IFileService {
	return &fileService{
		sessionService: sessionService,
		storage:        files,
		logger:         log,
	}
}

func fileResponse(f store.UploadedFile) dto.UploadedFileResponse {
	return dto.UploadedFileResponse{
		Name:       f.Name,
		URL:        f.Locator,
		MimeType:   f.MimeType,
		Analyzed:   f.Analyzed,
		AnalyzedBy: f.AnalyzedBy,
		FocusAreas: f.FocusAreas,
		UploadedAt: f.UploadedAt,
	}
}

func (s *fileService) Upload(ctx context.Context, sessionId string, userId string, files []*multipart.FileHeader) (*dto.UploadFilesResponse, error) {
	if len(files) == 0 {
		return nil, apperrors.InvalidInput("no files provided")
	}

	session, err := s.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}

	for _, header := range files {
		// Any file type is accepted; only images are picked up by the
		// analysis step later.
		contentType := header.Header.Get("Content-Type")
		if header.Size > maxUploadSize {
			return nil, apperrors.InvalidInput(fmt.Sprintf("%s exceeds the 10MB upload limit", header.Filename))
		}

		src, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, err
		}

		locator, err := s.storage.Save(session.ID, header.Filename, data)
		if err != nil {
			return nil, err
		}

		session.UploadedFiles = append(session.UploadedFiles, store.UploadedFile{
			Name:       header.Filename,
			Locator:    locator,
			MimeType:   contentType,
			UploadedAt: time.Now(),
		})
		s.logger.Info("files", "reference uploaded", map[string]interface{}{"session_id": session.ID, "file": header.Filename})
	}

	if err := s.sessionService.Persist(ctx, session); err != nil {
		return nil, err
	}
	return s.listResponse(session), nil
}

func (s *fileService) List(ctx context.Context, sessionId string, userId string) (*dto.UploadFilesResponse, error) {
	session, err := s.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}
	return s.listResponse(session), nil
}

func (s *fileService) listResponse(session *store.Session) *dto.UploadFilesResponse {
	out := make([]dto.UploadedFileResponse, 0, len(session.UploadedFiles))
	for _, f := range session.UploadedFiles {
		out = append(out, fileResponse(f))
	}
	return &dto.UploadFilesResponse{Files: out}
}

func (s *fileService) DeleteByIndex(ctx context.Context, sessionId string, userId string, index int) error {
	session, err := s.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(session.UploadedFiles) {
		return apperrors.NotFound("file index out of range")
	}

	file := session.UploadedFiles[index]
	if _, err := s.storage.Delete(file.Locator); err != nil {
		s.logger.Warn("files", "failed to delete stored file", map[string]interface{}{"file": file.Name, "error": err.Error()})
	}

	session.UploadedFiles = append(session.UploadedFiles[:index], session.UploadedFiles[index+1:]...)

	// Drop the analysis records that belonged to the removed file.
	kept := session.ReferenceAnalyses[:0]
	for _, a := range session.ReferenceAnalyses {
		if a.Filename != file.Name {
			kept = append(kept, a)
		}
	}
	session.ReferenceAnalyses = kept

	return s.sessionService.Persist(ctx, session)
}

func (s *fileService) ReferenceContext(ctx context.Context, sessionId string, userId string) (*dto.ReferenceContextResponse, error) {
	session, err := s.sessionService.Load(ctx, sessionId, userId)
	if err != nil {
		return nil, err
	}

	var parts []string
	for _, a := range session.ReferenceAnalyses {
		parts = append(parts, fmt.Sprintf("Reference image '%s': %s", a.Filename, a.Analysis))
	}

	return &dto.ReferenceContextResponse{
		Context:  strings.Join(parts, "\n\n"),
		Analyzed: len(session.ReferenceAnalyses),
		Pending:  len(session.UnanalyzedFiles()),
	}, nil
}
