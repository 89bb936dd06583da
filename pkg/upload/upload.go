// Package upload persists admin-submitted images and returns their public
// URLs. Two backends share one contract: an empty file is a no-op (no URL, no
// error), an oversized file fails before any write, and any I/O or service
// failure surfaces as an error distinct from form validation.
package upload

import (
	"context"
	"errors"
	"io"
)

// MaxFileSize is the upload ceiling.
const MaxFileSize = 3 << 20 // 3 MB

var ErrFileTooLarge = errors.New("file exceeds the 3 MB upload limit")

// File is the boundary representation of an uploaded binary.
type File struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// Uploader stores a file under a target subfolder and returns its public URL.
// An empty file returns ("", nil).
type Uploader interface {
	Upload(ctx context.Context, file File, folder string) (string, error)
}
