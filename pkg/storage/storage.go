package storage

import (
	"context"
	"io"
)

// MediaStorage defines the contract for the media store that keeps uploaded
// car and part files and hands back stable retrieval URLs.
type MediaStorage interface {
	// Upload stores the file content and returns its accessible URL.
	// folder is a logical folder in storage (e.g. "cars").
	Upload(ctx context.Context, r io.Reader, folder, fileName string) (string, error)
	// Delete removes a previously uploaded file using its URL.
	Delete(ctx context.Context, fileURL string) error
}
