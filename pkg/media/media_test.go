package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "haircut.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o644))

	img, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIME)
	assert.Equal(t, len(pngHeader), img.Size)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg==", img.DataURL)
	assert.True(t, IsDataURL(img.DataURL))
}

func TestReadFileSniffsWithoutExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o644))

	img, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIME)
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(context.Background(), filepath.Join(dir, "missing.png"))
	var rerr *ReadError
	require.True(t, errors.As(err, &rerr))
	assert.ErrorIs(t, err, os.ErrNotExist)

	big := filepath.Join(dir, "big.png")
	require.NoError(t, os.WriteFile(big, make([]byte, 64), 0o644))
	_, err = Reader{MaxBytes: 16}.ReadFile(context.Background(), big)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestReadFileCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "haircut.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadFile(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectType(t *testing.T) {
	assert.Equal(t, "image/jpeg", DetectType("a.JPG", nil))
	assert.Equal(t, "text/plain", DetectType("notes", []byte("hello")))
	assert.Equal(t, "application/pdf", DetectType("cv.pdf", nil))
}
