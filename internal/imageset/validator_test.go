package imageset

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	return img
}

func writeImage(t *testing.T, dir, name, format string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	img := testImage()
	switch format {
	case "png":
		err = png.Encode(f, img)
	case "jpeg":
		err = jpeg.Encode(f, img, nil)
	case "bmp":
		err = bmp.Encode(f, img)
	case "tiff":
		err = tiff.Encode(f, img, nil)
	default:
		t.Fatalf("unknown test image format %q", format)
	}
	if err != nil {
		t.Fatalf("failed to encode %s: %v", format, err)
	}
	return path
}

func TestValidateSupportedFormats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := []string{
		writeImage(t, dir, "a.png", "png"),
		writeImage(t, dir, "b.jpg", "jpeg"),
		writeImage(t, dir, "c.bmp", "bmp"),
		writeImage(t, dir, "d.tiff", "tiff"),
	}

	results, err := Validate(paths)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}

	wantFormats := []string{"png", "jpeg", "bmp", "tiff"}
	for i, r := range results {
		if !r.Valid {
			t.Errorf("result %d: valid = false, reason %s (%s)", i, r.Reason, r.Detail)
			continue
		}
		if r.Format != wantFormats[i] {
			t.Errorf("result %d: format = %q, want %q", i, r.Format, wantFormats[i])
		}
		if r.Width != 8 || r.Height != 6 {
			t.Errorf("result %d: dimensions = %dx%d, want 8x6", i, r.Width, r.Height)
		}
	}
}

func TestValidateMissingPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := writeImage(t, dir, "ok.png", "png")
	missing := filepath.Join(dir, "nope.png")

	results, err := Validate([]string{missing, valid})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(verr.Failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(verr.Failures))
	}
	if verr.Failures[0].Path != missing {
		t.Errorf("failure path = %q, want %q", verr.Failures[0].Path, missing)
	}
	if verr.Failures[0].Reason != ReasonMissing {
		t.Errorf("failure reason = %s, want %s", verr.Failures[0].Reason, ReasonMissing)
	}

	// The valid path must not be flagged.
	if !results[1].Valid {
		t.Error("valid image was flagged invalid")
	}
}

func TestValidateUnsupportedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	textFile := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(textFile, []byte("definitely not an image"), 0o644); err != nil {
		t.Fatalf("failed to write text file: %v", err)
	}

	_, err := Validate([]string{textFile})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Failures[0].Reason != ReasonUnsupported {
		t.Errorf("reason = %s, want %s", verr.Failures[0].Reason, ReasonUnsupported)
	}
}

func TestValidateDirectoryPath(t *testing.T) {
	t.Parallel()

	_, err := Validate([]string{t.TempDir()})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Failures[0].Reason != ReasonUnsupported {
		t.Errorf("reason = %s, want %s", verr.Failures[0].Reason, ReasonUnsupported)
	}
}

func TestValidateExhaustive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing1 := filepath.Join(dir, "a.png")
	missing2 := filepath.Join(dir, "b.png")
	valid := writeImage(t, dir, "c.png", "png")

	_, err := Validate([]string{missing1, valid, missing2})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(verr.Failures) != 2 {
		t.Fatalf("got %d failures, want 2 (validation must not stop at the first)", len(verr.Failures))
	}
}

func TestValidateEmptySet(t *testing.T) {
	t.Parallel()

	results, err := Validate(nil)
	if err != nil {
		t.Fatalf("Validate(nil) failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results for empty input", len(results))
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Failures: []Result{
		{Path: "/tmp/a.png", Reason: ReasonMissing},
		{Path: "/tmp/b.png", Reason: ReasonUnsupported},
	}}

	msg := verr.Error()
	for _, want := range []string{"/tmp/a.png", "missing", "/tmp/b.png", "unsupported"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}
