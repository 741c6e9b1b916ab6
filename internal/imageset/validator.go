package imageset

import (
	"fmt"
	"image"
	"os"
	"strings"

	"video-streamer/internal/logging"
	"video-streamer/internal/metrics"

	// Image format decoders for header-level validation.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Reason classifies why an image path failed validation.
type Reason string

const (
	// ReasonMissing means the path does not exist.
	ReasonMissing Reason = "missing"
	// ReasonUnreadable means the path exists but could not be opened or read.
	ReasonUnreadable Reason = "unreadable"
	// ReasonUnsupported means the file is not a supported image format.
	ReasonUnsupported Reason = "unsupported"
)

// supportedFormats holds the format names image.DecodeConfig may report for
// the formats the encoder accepts as input frames.
var supportedFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"bmp":  true,
	"tiff": true,
	"webp": true,
}

// Result is the validation outcome for a single candidate image path.
type Result struct {
	Path   string `json:"path"`
	Valid  bool   `json:"valid"`
	Reason Reason `json:"reason,omitempty"`
	Detail string `json:"detail,omitempty"`

	// Populated for valid images.
	Format string `json:"format,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ValidationError reports every failing path in a candidate set. Validation
// is exhaustive rather than fail-fast so callers can surface all problems in
// one response.
type ValidationError struct {
	Failures []Result
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d invalid image(s):", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, " %s (%s)", f.Path, f.Reason)
	}
	return b.String()
}

// Validate checks every candidate path for existence, readability, and a
// supported image format (JPEG, PNG, BMP, TIFF, WebP), decoding only the
// image header. It returns a result per path in input order; the error is a
// *ValidationError listing all failures, or nil if every path is valid.
func Validate(paths []string) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	var failures []Result

	for _, path := range paths {
		result := validateOne(path)
		results = append(results, result)
		if !result.Valid {
			failures = append(failures, result)
		}
	}

	if len(failures) > 0 {
		return results, &ValidationError{Failures: failures}
	}
	return results, nil
}

func validateOne(path string) Result {
	result := Result{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			result.Reason = ReasonMissing
			result.Detail = "file does not exist"
		} else {
			result.Reason = ReasonUnreadable
			result.Detail = err.Error()
		}
		metrics.ImageValidationsTotal.WithLabelValues(string(result.Reason)).Inc()
		return result
	}
	if info.IsDir() {
		result.Reason = ReasonUnsupported
		result.Detail = "path is a directory"
		metrics.ImageValidationsTotal.WithLabelValues(string(result.Reason)).Inc()
		return result
	}

	f, err := os.Open(path)
	if err != nil {
		result.Reason = ReasonUnreadable
		result.Detail = err.Error()
		metrics.ImageValidationsTotal.WithLabelValues(string(result.Reason)).Inc()
		return result
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("failed to close image file %s: %v", path, err)
		}
	}()

	// DecodeConfig reads only the header, so oversized images cost nothing.
	config, format, err := image.DecodeConfig(f)
	if err != nil {
		result.Reason = ReasonUnsupported
		result.Detail = fmt.Sprintf("not a decodable image: %v", err)
		metrics.ImageValidationsTotal.WithLabelValues(string(result.Reason)).Inc()
		return result
	}
	if !supportedFormats[format] {
		result.Reason = ReasonUnsupported
		result.Detail = fmt.Sprintf("format %q is not supported", format)
		metrics.ImageValidationsTotal.WithLabelValues(string(result.Reason)).Inc()
		return result
	}

	result.Valid = true
	result.Format = format
	result.Width = config.Width
	result.Height = config.Height
	metrics.ImageValidationsTotal.WithLabelValues("valid").Inc()
	return result
}
