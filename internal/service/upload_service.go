package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"anoa.com/noorautomobiles/internal/dto"
	"anoa.com/noorautomobiles/pkg/apperror"
	"anoa.com/noorautomobiles/pkg/storage"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

var imageExtensions = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".webp": true, ".gif": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".webm": true, ".mov": true,
}

type UploadService interface {
	// UploadBatch stores a bounded batch of media files under the logical
	// folder and returns their URLs with an image/video classification.
	UploadBatch(ctx context.Context, folder string, files []*multipart.FileHeader, maxFiles int) ([]dto.UploadedFile, error)
}

type uploadService struct {
	store storage.MediaStorage
}

func NewUploadService(store storage.MediaStorage) UploadService {
	return &uploadService{store: store}
}

func (s *uploadService) UploadBatch(ctx context.Context, folder string, files []*multipart.FileHeader, maxFiles int) ([]dto.UploadedFile, error) {
	if len(files) == 0 {
		return nil, apperror.Validation("no files uploaded")
	}
	if len(files) > maxFiles {
		return nil, apperror.Validation(fmt.Sprintf("at most %d files per upload", maxFiles))
	}

	uploaded := make([]dto.UploadedFile, 0, len(files))
	for _, fileHeader := range files {
		mediaType, err := ClassifyMediaType(fileHeader.Filename)
		if err != nil {
			return nil, err
		}

		f, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file %q: %w", fileHeader.Filename, err)
		}

		fileURL, err := s.store.Upload(ctx, f, folder, fileHeader.Filename)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to store %q: %w", fileHeader.Filename, err)
		}

		uploaded = append(uploaded, dto.UploadedFile{
			URL:          fileURL,
			Type:         mediaType,
			OriginalName: fileHeader.Filename,
		})
	}

	return uploaded, nil
}

// ClassifyMediaType derives image/video from the file extension and rejects
// anything outside the allowed set.
func ClassifyMediaType(fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch {
	case imageExtensions[ext]:
		return MediaTypeImage, nil
	case videoExtensions[ext]:
		return MediaTypeVideo, nil
	default:
		return "", apperror.Validation("only images (jpeg, jpg, png, webp, gif) and videos (mp4, webm, mov) are allowed")
	}
}
