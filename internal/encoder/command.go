package encoder

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"
)

// Config describes the external encoder as configured at startup.
type Config struct {
	// Path is the encoder executable, either an absolute path or a name
	// resolved against PATH.
	Path string
	// Codec is the output video codec, e.g. libx264.
	Codec string
	// PixelFormat is the output pixel format, e.g. yuv420p.
	PixelFormat string
	// Timeout bounds a single encoder invocation. Zero means no limit.
	Timeout time.Duration
}

// Spec describes the output geometry and per-image timing of a slideshow
// video. All fields must be positive.
type Spec struct {
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// NewSpec validates and constructs a Spec.
func NewSpec(width, height int, durationSeconds float64) (Spec, error) {
	s := Spec{Width: width, Height: height, DurationSeconds: durationSeconds}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Validate reports whether all fields are in range.
func (s Spec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.DurationSeconds <= 0 {
		return fmt.Errorf("duration per image must be positive, got %g", s.DurationSeconds)
	}
	return nil
}

// BuildArgs translates a creation request into the encoder argument vector.
//
// The vector is deterministic for identical inputs: concat list input, scale
// filter from the spec, configured codec and pixel format, and the output
// path resolved to an absolute path. Relative output paths are a known source
// of encoder-side failures, so resolution happens here rather than inside the
// external process.
func BuildArgs(listFile string, spec Spec, outputPath string, cfg Config) ([]string, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path: %w", err)
	}

	return []string{
		"-f", "concat",
		"-safe", "0",
		"-i", listFile,
		"-vf", "scale=" + strconv.Itoa(spec.Width) + ":" + strconv.Itoa(spec.Height),
		"-c:v", cfg.Codec,
		"-pix_fmt", cfg.PixelFormat,
		"-vsync", "vfr",
		"-y",
		absOutput,
	}, nil
}
