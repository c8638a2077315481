package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type localStorage struct {
	baseDir string
	baseURL string
}

// NewLocalStorage creates a disk-backed implementation of MediaStorage.
// Files live under baseDir and are served by the router under baseURL
// (e.g. "/uploads").
func NewLocalStorage(baseDir, baseURL string) (MediaStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &localStorage{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload writes the file to disk under a generated unique name and returns
// its serving URL.
func (s *localStorage) Upload(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder %q: %w", folder, err)
	}

	// Keep the extension, replace the name to avoid collisions and
	// path traversal through user-controlled file names.
	ext := strings.ToLower(filepath.Ext(fileName))
	name := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/" + folder + "/" + name, nil
}

// Delete removes the file behind a previously returned URL.
func (s *localStorage) Delete(ctx context.Context, fileURL string) error {
	rel := strings.TrimPrefix(fileURL, s.baseURL+"/")
	if rel == fileURL || strings.Contains(rel, "..") {
		return fmt.Errorf("url %q does not belong to local storage", fileURL)
	}

	if err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel))); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
