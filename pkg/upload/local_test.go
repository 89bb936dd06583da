package upload

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalUploader(t *testing.T) {
	ctx := context.Background()

	t.Run("writes file and returns public path", func(t *testing.T) {
		dir := t.TempDir()
		u := NewLocalUploader(dir)

		url, err := u.Upload(ctx, File{Name: "logo.png", Size: 4, Reader: strings.NewReader("data")}, "stores")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/uploads/stores/"))
		assert.True(t, strings.HasSuffix(url, ".png"))

		// The public path maps onto the base directory.
		onDisk := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
		data, err := os.ReadFile(onDisk)
		require.NoError(t, err)
		assert.Equal(t, "data", string(data))
	})

	t.Run("empty file is a no-op", func(t *testing.T) {
		u := NewLocalUploader(t.TempDir())
		url, err := u.Upload(ctx, File{Name: "empty.png", Size: 0, Reader: strings.NewReader("")}, "stores")
		assert.NoError(t, err)
		assert.Empty(t, url)
	})

	t.Run("oversized file fails before any write", func(t *testing.T) {
		dir := t.TempDir()
		u := NewLocalUploader(dir)
		_, err := u.Upload(ctx, File{Name: "big.png", Size: MaxFileSize + 1, Reader: strings.NewReader("x")}, "stores")
		assert.ErrorIs(t, err, ErrFileTooLarge)

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("collision-resistant filenames", func(t *testing.T) {
		u := NewLocalUploader(t.TempDir())
		first, err := u.Upload(ctx, File{Name: "a.jpg", Size: 1, Reader: strings.NewReader("a")}, "coupons")
		require.NoError(t, err)
		second, err := u.Upload(ctx, File{Name: "a.jpg", Size: 1, Reader: strings.NewReader("a")}, "coupons")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}
