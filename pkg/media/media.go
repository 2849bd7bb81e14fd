// Package media turns user-selected files into inline data URLs.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxBytes caps the size of a file read by ReadFile.
const DefaultMaxBytes = 5 << 20

// ErrTooLarge is wrapped by ReadError when a file exceeds the size limit.
var ErrTooLarge = errors.New("media: file too large")

// ReadError reports a file that could not be turned into an Image.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("media: read %s: %v", e.Path, e.Err) }

func (e *ReadError) Unwrap() error { return e.Err }

// Image is a file payload embedded as a data URL.
type Image struct {
	MIME    string
	DataURL string
	Size    int
}

// Reader reads files with a size limit.
type Reader struct {
	MaxBytes int64
}

// ReadFile reads path with DefaultMaxBytes. See Reader.ReadFile.
func ReadFile(ctx context.Context, path string) (Image, error) {
	return Reader{MaxBytes: DefaultMaxBytes}.ReadFile(ctx, path)
}

type result struct {
	img Image
	err error
}

// ReadFile reads path off the calling goroutine and waits for it. If ctx ends
// first the context error is returned and the read result is discarded.
func (r Reader) ReadFile(ctx context.Context, path string) (Image, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}
	done := make(chan result, 1)
	go func() {
		img, err := r.read(path)
		done <- result{img, err}
	}()
	select {
	case <-ctx.Done():
		return Image{}, ctx.Err()
	case res := <-done:
		return res.img, res.err
	}
}

func (r Reader) read(path string) (Image, error) {
	limit := r.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	f, err := os.Open(path)
	if err != nil {
		return Image{}, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return Image{}, &ReadError{Path: path, Err: err}
	}
	if int64(len(data)) > limit {
		return Image{}, &ReadError{Path: path, Err: ErrTooLarge}
	}
	typ := DetectType(path, data)
	return Image{MIME: typ, DataURL: DataURL(typ, data), Size: len(data)}, nil
}

// DetectType picks a MIME type from the file extension, falling back to
// content sniffing.
func DetectType(path string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			return mt
		}
	}
	t := http.DetectContentType(data)
	if mt, _, err := mime.ParseMediaType(t); err == nil {
		return mt
	}
	return "application/octet-stream"
}

// DataURL encodes data as a base64 data URL.
func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// IsDataURL reports whether s is an inline data URL.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}
