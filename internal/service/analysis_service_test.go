package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"genfy-be/pkg/storage"
	"genfy-be/pkg/store"
	"genfy-be/pkg/vision"
)

const plannerReply = `{"choices":[{"message":{"content":"{\"focus_areas\":[\"lighting\",\"colors\"],\"reasoning\":\"mood shot\"}"}}]}`

// visionHandler answers the planner call with a focus plan and every vision
// call with descriptionReply (or an error status when failVision is set).
func visionHandler(t *testing.T, descriptionReply string, failVision bool, calls *int) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		*calls++
		var req struct {
			Model string `json:"model"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Model == vision.DefaultPlannerModel {
			w.Write([]byte(plannerReply))
			return
		}
		if failVision {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"` + descriptionReply + `"}}]}`))
	}
}

func newAnalysisFixture(t *testing.T, handler http.HandlerFunc) (IAnalysisService, *storage.LocalStorage, *store.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := vision.NewClient("test-key")
	assert.NoError(t, err)
	client.BaseURL = srv.URL

	files, err := storage.NewLocalStorage(t.TempDir())
	assert.NoError(t, err)

	session := store.New("vision-session", "mistral")
	session.Category = "Realistic Photo"
	return NewAnalysisService(client, files, nopLogger{}), files, session
}

func addStoredFile(t *testing.T, files *storage.LocalStorage, session *store.Session, name, mimeType string, analyzed bool) {
	t.Helper()
	locator, err := files.Save(session.ID, name, []byte{0xFF, 0xD8, 0x01})
	assert.NoError(t, err)
	session.UploadedFiles = append(session.UploadedFiles, store.UploadedFile{
		Name:     name,
		Locator:  locator,
		MimeType: mimeType,
		Analyzed: analyzed,
	})
}

func TestAnalyzeReferencesOnlyPendingImages(t *testing.T) {
	calls := 0
	svc, files, session := newAnalysisFixture(t, visionHandler(t, "a moody coastal scene", false, &calls))

	addStoredFile(t, files, session, "done.jpg", "image/jpeg", true)
	addStoredFile(t, files, session, "pending.jpg", "image/jpeg", false)
	addStoredFile(t, files, session, "notes.pdf", "application/pdf", false)

	svc.AnalyzeReferences(context.Background(), session, "a lighthouse at dusk")

	// One planner call plus one vision call for the single pending image.
	assert.Equal(t, 2, calls)
	assert.Len(t, session.ReferenceAnalyses, 1)
	assert.Equal(t, "pending.jpg", session.ReferenceAnalyses[0].Filename)
	assert.Equal(t, "a moody coastal scene", session.ReferenceAnalyses[0].Analysis)
	assert.Equal(t, []string{"lighting", "colors"}, session.ReferenceAnalyses[0].FocusAreas)

	assert.True(t, session.UploadedFiles[1].Analyzed)
	assert.Equal(t, "a moody coastal scene", session.UploadedFiles[1].Summary)
	assert.Equal(t, []string{"lighting", "colors"}, session.UploadedFiles[1].FocusAreas)
	assert.False(t, session.UploadedFiles[2].Analyzed)
	assert.Empty(t, session.UploadedFiles[2].AnalysisError)
}

func TestAnalyzeReferencesFailureStaysRetryable(t *testing.T) {
	calls := 0
	svc, files, session := newAnalysisFixture(t, visionHandler(t, "", true, &calls))

	addStoredFile(t, files, session, "ref.jpg", "image/jpeg", false)

	svc.AnalyzeReferences(context.Background(), session, "a lighthouse")

	assert.False(t, session.UploadedFiles[0].Analyzed)
	assert.NotEmpty(t, session.UploadedFiles[0].AnalysisError)
	assert.Empty(t, session.ReferenceAnalyses)
}

func TestAnalyzeReferencesNoPendingSkipsCalls(t *testing.T) {
	calls := 0
	svc, files, session := newAnalysisFixture(t, visionHandler(t, "unused", false, &calls))

	addStoredFile(t, files, session, "done.jpg", "image/jpeg", true)

	svc.AnalyzeReferences(context.Background(), session, "anything")
	assert.Zero(t, calls)
}

func TestAnalyzeReferencesWithoutClient(t *testing.T) {
	files, err := storage.NewLocalStorage(t.TempDir())
	assert.NoError(t, err)
	svc := NewAnalysisService(nil, files, nopLogger{})

	session := store.New("no-client", "mistral")
	session.UploadedFiles = append(session.UploadedFiles, store.UploadedFile{Name: "ref.jpg", MimeType: "image/jpeg"})

	svc.AnalyzeReferences(context.Background(), session, "anything")
	assert.False(t, session.UploadedFiles[0].Analyzed)
	assert.Empty(t, session.ReferenceAnalyses)
}
