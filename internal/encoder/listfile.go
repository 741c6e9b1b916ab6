package encoder

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"video-streamer/internal/logging"
)

// WriteListFile writes a concat-demuxer list for the given images, each held
// for durationSeconds. Entries use absolute paths so the encoder's working
// directory is irrelevant. The last image is repeated without a duration so
// the final frame is held for its full interval (a concat demuxer quirk).
//
// The returned cleanup removes the list file and is safe to call exactly once.
func WriteListFile(images []string, durationSeconds float64) (string, func(), error) {
	if len(images) == 0 {
		return "", nil, fmt.Errorf("no images provided")
	}

	var b strings.Builder
	duration := strconv.FormatFloat(durationSeconds, 'f', -1, 64)
	for _, img := range images {
		abs, err := filepath.Abs(img)
		if err != nil {
			return "", nil, fmt.Errorf("failed to resolve image path %s: %w", img, err)
		}
		fmt.Fprintf(&b, "file '%s'\n", abs)
		fmt.Fprintf(&b, "duration %s\n", duration)
	}

	last, err := filepath.Abs(images[len(images)-1])
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve image path %s: %w", images[len(images)-1], err)
	}
	fmt.Fprintf(&b, "file '%s'\n", last)

	f, err := os.CreateTemp("", "concat-list-*.txt")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create concat list file: %w", err)
	}
	name := f.Name()

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		os.Remove(name)
		return "", nil, fmt.Errorf("failed to write concat list file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", nil, fmt.Errorf("failed to close concat list file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(name); err != nil {
			logging.Warn("failed to remove concat list file %s: %v", name, err)
		}
	}
	return name, cleanup, nil
}
