// Package storage persists uploaded reference images on the local disk,
// addressed by /uploads/{session}/{file} locators that double as static URLs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

func (l *LocalStorage) BaseDir() string {
	return l.baseDir
}

// Save writes the file under a session-scoped directory with a timestamped,
// space-free name and returns its /uploads locator.
func (l *LocalStorage) Save(sessionID, filename string, data []byte) (string, error) {
	sessionDir := filepath.Join(l.baseDir, sessionID)
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		return "", fmt.Errorf("create session directory: %w", err)
	}

	safeName := fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), strings.ReplaceAll(filepath.Base(filename), " ", "_"))
	if err := os.WriteFile(filepath.Join(sessionDir, safeName), data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return fmt.Sprintf("/uploads/%s/%s", sessionID, safeName), nil
}

// Read loads a stored file by its locator.
func (l *LocalStorage) Read(locator string) ([]byte, error) {
	path, err := l.resolve(locator)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// Delete removes a stored file. Deleting a missing file is not an error;
// it reports false instead.
func (l *LocalStorage) Delete(locator string) (bool, error) {
	path, err := l.resolve(locator)
	if err != nil {
		return false, err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete file: %w", err)
	}
	return true, nil
}

// DeleteSession removes every file uploaded for a session.
func (l *LocalStorage) DeleteSession(sessionID string) error {
	if sessionID == "" || strings.ContainsAny(sessionID, "/\\.") {
		return fmt.Errorf("invalid session id: %q", sessionID)
	}
	return os.RemoveAll(filepath.Join(l.baseDir, sessionID))
}

// resolve maps a locator back to a path inside the base directory and
// rejects traversal attempts.
func (l *LocalStorage) resolve(locator string) (string, error) {
	rel := strings.TrimPrefix(locator, "/uploads/")
	rel = strings.TrimPrefix(rel, "/")
	path := filepath.Join(l.baseDir, filepath.Clean("/"+rel))
	if !strings.HasPrefix(path, l.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid locator: %q", locator)
	}
	return path, nil
}
