package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorageUploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	fileURL, err := store.Upload(context.Background(), strings.NewReader("image-bytes"), "cars", "front view.jpg")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if !strings.HasPrefix(fileURL, "/uploads/cars/") {
		t.Fatalf("unexpected url: %s", fileURL)
	}
	if !strings.HasSuffix(fileURL, ".jpg") {
		t.Fatalf("extension must be kept: %s", fileURL)
	}
	if strings.Contains(fileURL, "front view") {
		t.Fatalf("original name must not leak into the stored name: %s", fileURL)
	}

	rel := strings.TrimPrefix(fileURL, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, rel))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}

	if err := store.Delete(context.Background(), fileURL); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, rel)); !os.IsNotExist(err) {
		t.Fatalf("file should be gone, stat err: %v", err)
	}

	// Deleting twice is not an error.
	if err := store.Delete(context.Background(), fileURL); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestLocalStorageDeleteRejectsForeignURL(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if err := store.Delete(context.Background(), "https://elsewhere.example.com/file.jpg"); err == nil {
		t.Fatalf("expected error for URL outside local storage")
	}
	if err := store.Delete(context.Background(), "/uploads/../etc/passwd"); err == nil {
		t.Fatalf("expected error for traversal URL")
	}
}

func TestLocalStorageUniqueNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	first, err := store.Upload(context.Background(), strings.NewReader("a"), "parts", "same.png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	second, err := store.Upload(context.Background(), strings.NewReader("b"), "parts", "same.png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct stored names for identical uploads")
	}
}
