package streaming

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCopyWithTimeoutBasic(t *testing.T) {
	t.Parallel()

	data := strings.Repeat("x", 1024)
	w := httptest.NewRecorder()

	written, err := CopyWithTimeout(context.Background(), w, strings.NewReader(data), DefaultTimeoutWriterConfig())
	if err != nil {
		t.Fatalf("CopyWithTimeout failed: %v", err)
	}
	if written != int64(len(data)) {
		t.Errorf("written = %d, want %d", written, len(data))
	}
	if w.Body.String() != data {
		t.Error("body does not match source data")
	}
}

func TestCopyWithTimeoutChunking(t *testing.T) {
	t.Parallel()

	config := DefaultTimeoutWriterConfig()
	config.ChunkSize = 128

	data := bytes.Repeat([]byte{0x42}, 1000)
	w := httptest.NewRecorder()

	written, err := CopyWithTimeout(context.Background(), w, bytes.NewReader(data), config)
	if err != nil {
		t.Fatalf("CopyWithTimeout failed: %v", err)
	}
	if written != 1000 {
		t.Errorf("written = %d, want 1000", written)
	}
	if !bytes.Equal(w.Body.Bytes(), data) {
		t.Error("chunked body does not match source data")
	}
}

func TestWriteAfterClose(t *testing.T) {
	t.Parallel()

	tw := NewTimeoutWriter(context.Background(), httptest.NewRecorder(), DefaultTimeoutWriterConfig())
	if err := tw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	_, err := tw.Write([]byte("data"))
	if !errors.Is(err, ErrStreamCanceled) {
		t.Errorf("error = %v, want ErrStreamCanceled", err)
	}
}

func TestWriteWithCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	tw := NewTimeoutWriter(ctx, httptest.NewRecorder(), DefaultTimeoutWriterConfig())
	defer tw.Close()

	cancel()

	// The cancellation signal may take a moment to propagate through the
	// derived context before Write observes it.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, err := tw.Write([]byte("data")); err != nil {
			if !errors.Is(err, ErrClientGone) {
				t.Fatalf("error = %v, want ErrClientGone", err)
			}
			return
		}
	}
	t.Fatal("Write never failed after context cancellation")
}

func TestStats(t *testing.T) {
	t.Parallel()

	tw := NewTimeoutWriter(context.Background(), httptest.NewRecorder(), DefaultTimeoutWriterConfig())
	defer tw.Close()

	if _, err := tw.Write([]byte("hello")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	written, duration := tw.Stats()
	if written != 5 {
		t.Errorf("bytesWritten = %d, want 5", written)
	}
	if duration < 0 {
		t.Errorf("duration = %v, want >= 0", duration)
	}
}

func TestCloseIdempotent(t *testing.T) {
	t.Parallel()

	tw := NewTimeoutWriter(context.Background(), httptest.NewRecorder(), DefaultTimeoutWriterConfig())
	if err := tw.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}
