// internal/infrastructure/storage/local.go
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/your-org/hardware-store-backend/internal/config"
)

// Validation errors for uploaded files.
var (
	ErrEmptyFile        = errors.New("uploaded file is empty")
	ErrMissingFilename  = errors.New("uploaded file has no name")
	ErrInvalidExtension = errors.New("file extension is not allowed")
	ErrFileTooLarge     = errors.New("file exceeds the maximum allowed size")
)

// LocalStorage saves uploaded files on the local filesystem and maps
// them to public URLs under the configured prefix.
type LocalStorage struct {
	dir         string
	urlPrefix   string
	maxSize     int64
	allowedExts map[string]bool
}

// NewLocal creates a local storage backed by cfg.Storage.UploadDir
func NewLocal(cfg *config.Config) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.Storage.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	allowed := make(map[string]bool, len(cfg.Upload.AllowedExtensions))
	for _, ext := range cfg.Upload.AllowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	return &LocalStorage{
		dir:         cfg.Storage.UploadDir,
		urlPrefix:   strings.TrimSuffix(cfg.Storage.URLPrefix, "/"),
		maxSize:     cfg.Upload.MaxSize,
		allowedExts: allowed,
	}, nil
}

// Dir returns the directory files are written to
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save validates and stores an uploaded product image. The stored name
// is producto_<productID>_<uuid>.<ext> so concurrent uploads never
// collide. Returns the public URL of the stored file.
func (s *LocalStorage) Save(file *multipart.FileHeader, productID uint) (string, error) {
	if file == nil || file.Size == 0 {
		return "", ErrEmptyFile
	}
	if file.Filename == "" {
		return "", ErrMissingFilename
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if ext == "" || !s.allowedExts[ext] {
		return "", ErrInvalidExtension
	}

	name := fmt.Sprintf("producto_%d_%s.%s", productID, uuid.New().String(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

// Delete removes the file behind a public URL. Missing files are not
// an error, so deleting an image row always succeeds even when the
// file is already gone.
func (s *LocalStorage) Delete(publicURL string) error {
	name := filepath.Base(publicURL)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
