package streaming

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeVideoFile(t *testing.T, size int) (string, []byte) {
	t.Helper()

	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	path := filepath.Join(t.TempDir(), "sample.mp4")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write video file: %v", err)
	}
	return path, data
}

func serve(t *testing.T, path, rangeHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/stream", http.NoBody)
	if rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}
	w := httptest.NewRecorder()

	NewResponder(DefaultTimeoutWriterConfig(), "").ServeVideo(w, req, path)
	return w
}

func TestServeVideoContentTypeOverride(t *testing.T) {
	t.Parallel()

	path, _ := writeVideoFile(t, 100)
	req := httptest.NewRequest(http.MethodGet, "/stream", http.NoBody)
	w := httptest.NewRecorder()

	NewResponder(DefaultTimeoutWriterConfig(), "video/webm").ServeVideo(w, req, path)

	if got := w.Header().Get("Content-Type"); got != "video/webm" {
		t.Errorf("Content-Type = %q, want configured override video/webm", got)
	}
}

func TestServeVideoFullFile(t *testing.T) {
	t.Parallel()

	path, data := writeVideoFile(t, 500)
	w := serve(t, path, "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Length"); got != "500" {
		t.Errorf("Content-Length = %q, want 500", got)
	}
	if got := w.Header().Get("Content-Type"); got != "video/mp4" {
		t.Errorf("Content-Type = %q, want video/mp4", got)
	}
	if got := w.Header().Get("Accept-Ranges"); got != "bytes" {
		t.Errorf("Accept-Ranges = %q, want bytes", got)
	}
	if !bytes.Equal(w.Body.Bytes(), data) {
		t.Error("body does not match file contents")
	}
}

func TestServeVideoPartialContent(t *testing.T) {
	t.Parallel()

	path, data := writeVideoFile(t, 500)
	w := serve(t, path, "bytes=0-99")

	if w.Code != http.StatusPartialContent {
		t.Fatalf("status = %d, want 206", w.Code)
	}
	if got := w.Header().Get("Content-Range"); got != "bytes 0-99/500" {
		t.Errorf("Content-Range = %q, want %q", got, "bytes 0-99/500")
	}
	if got := w.Header().Get("Content-Length"); got != "100" {
		t.Errorf("Content-Length = %q, want 100", got)
	}
	if w.Body.Len() != 100 {
		t.Fatalf("body length = %d, want 100", w.Body.Len())
	}
	if !bytes.Equal(w.Body.Bytes(), data[:100]) {
		t.Error("body does not match requested slice")
	}
}

func TestServeVideoSuffixRange(t *testing.T) {
	t.Parallel()

	path, data := writeVideoFile(t, 500)
	w := serve(t, path, "bytes=-50")

	if w.Code != http.StatusPartialContent {
		t.Fatalf("status = %d, want 206", w.Code)
	}
	if got := w.Header().Get("Content-Range"); got != "bytes 450-499/500" {
		t.Errorf("Content-Range = %q, want %q", got, "bytes 450-499/500")
	}
	if !bytes.Equal(w.Body.Bytes(), data[450:]) {
		t.Error("body does not match file tail")
	}
}

func TestServeVideoUnsatisfiableRange(t *testing.T) {
	t.Parallel()

	path, _ := writeVideoFile(t, 500)
	w := serve(t, path, "bytes=500-600")

	if w.Code != http.StatusRequestedRangeNotSatisfiable {
		t.Fatalf("status = %d, want 416", w.Code)
	}
	if got := w.Header().Get("Content-Range"); got != "bytes */500" {
		t.Errorf("Content-Range = %q, want %q", got, "bytes */500")
	}
	if got := w.Header().Get("Accept-Ranges"); got != "bytes" {
		t.Errorf("Accept-Ranges = %q, want bytes", got)
	}
	if w.Body.Len() != 0 {
		t.Errorf("416 body should be empty, got %d bytes", w.Body.Len())
	}
}

func TestServeVideoMalformedRange(t *testing.T) {
	t.Parallel()

	path, _ := writeVideoFile(t, 500)
	w := serve(t, path, "bytes=abc")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := w.Header().Get("Accept-Ranges"); got != "bytes" {
		t.Errorf("Accept-Ranges = %q, want bytes", got)
	}
	if w.Body.Len() == 0 {
		t.Error("400 response should carry an error message")
	}
}

func TestServeVideoMissingFile(t *testing.T) {
	t.Parallel()

	w := serve(t, filepath.Join(t.TempDir(), "gone.mp4"), "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
