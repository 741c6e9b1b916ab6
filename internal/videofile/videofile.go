package videofile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"video-streamer/internal/httprange"
	"video-streamer/internal/logging"
)

// ErrTruncated indicates the file shrank between the size snapshot and the
// chunk read, so the requested interval could not be filled.
var ErrTruncated = errors.New("file truncated during read")

// Metadata is an immutable snapshot of a video file taken at request time.
type Metadata struct {
	Size        uint64
	ContentType string
}

var contentTypes = map[string]string{
	".webm": "video/webm",
	".mp4":  "video/mp4",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
}

// ContentType infers the MIME type of a video file from its extension.
// Unknown extensions fall back to application/octet-stream.
func ContentType(path string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Stat returns a metadata snapshot for the video at path.
func Stat(path string) (Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to stat video file: %w", err)
	}
	if info.IsDir() {
		return Metadata{}, fmt.Errorf("video path %s is a directory", path)
	}
	return Metadata{
		Size:        uint64(info.Size()),
		ContentType: ContentType(path),
	}, nil
}

// ReadChunk reads exactly the bytes covered by r from the file at path.
// The range must have been validated against the file size beforehand; a
// short read means the file was truncated after the size snapshot and is
// reported as ErrTruncated.
func ReadChunk(path string, r httprange.ByteRange) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("failed to close video file %s: %v", path, err)
		}
	}()

	buf := make([]byte, r.Length())
	n, err := f.ReadAt(buf, int64(r.Start))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: wanted %d bytes at offset %d, got %d",
				ErrTruncated, r.Length(), r.Start, n)
		}
		return nil, fmt.Errorf("failed to read video chunk: %w", err)
	}

	return buf, nil
}
