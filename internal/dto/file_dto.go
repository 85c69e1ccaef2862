package dto

import "time"

type UploadedFileResponse struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	MimeType   string    `json:"mime_type"`
	Analyzed   bool      `json:"analyzed"`
	AnalyzedBy string    `json:"analyzed_by,omitempty"`
	FocusAreas []string  `json:"focus_areas,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type UploadFilesResponse struct {
	Files []UploadedFileResponse `json:"files"`
}

type ReferenceContextResponse struct {
	Context  string `json:"context"`
	Analyzed int    `json:"analyzed"`
	Pending  int    `json:"pending"`
}
