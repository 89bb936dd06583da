package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalUploader writes files under a public uploads directory, namespaced by
// entity type, and returns paths served by static file handling.
type LocalUploader struct {
	BaseDir    string
	PublicPath string
}

func NewLocalUploader(baseDir string) *LocalUploader {
	return &LocalUploader{BaseDir: baseDir, PublicPath: "/uploads"}
}

func (u *LocalUploader) Upload(ctx context.Context, file File, folder string) (string, error) {
	if file.Size == 0 {
		return "", nil
	}
	if file.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	filename := uuid.NewString() + filepath.Ext(file.Name)
	dir := filepath.Join(u.BaseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file.Reader); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return u.PublicPath + "/" + folder + "/" + filename, nil
}
