package streaming

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"video-streamer/internal/httprange"
	"video-streamer/internal/logging"
	"video-streamer/internal/metrics"
	"video-streamer/internal/videofile"
)

// Responder turns a stream request into an HTTP response following partial
// content semantics:
//
//	no Range header            -> 200, full file
//	valid range                -> 206, Content-Range + exact chunk
//	unsatisfiable range        -> 416, Content-Range: bytes */size
//	malformed range            -> 400
//
// Every response advertises Accept-Ranges: bytes.
type Responder struct {
	writerConfig TimeoutWriterConfig
	contentType  string
}

// NewResponder creates a Responder with the given writer configuration.
// contentType overrides the type inferred from the file extension; pass ""
// to infer.
func NewResponder(config TimeoutWriterConfig, contentType string) *Responder {
	return &Responder{writerConfig: config, contentType: contentType}
}

// contentTypeFor returns the configured override or the inferred type.
func (resp *Responder) contentTypeFor(meta videofile.Metadata) string {
	if resp.contentType != "" {
		return resp.contentType
	}
	return meta.ContentType
}

// ServeVideo serves the video at path, honoring any Range header on r.
func (resp *Responder) ServeVideo(w http.ResponseWriter, r *http.Request, path string) {
	w.Header().Set("Accept-Ranges", "bytes")

	meta, err := videofile.Stat(path)
	if err != nil {
		logging.Error("stream: failed to stat %s: %v", path, err)
		metrics.StreamRequestsTotal.WithLabelValues("error").Inc()
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "Video file not found", http.StatusNotFound)
		} else {
			http.Error(w, "Failed to access video file", http.StatusInternalServerError)
		}
		return
	}

	rangeHeader := r.Header.Get("Range")
	br, requested, err := httprange.Parse(rangeHeader, meta.Size)

	switch {
	case err == nil && !requested:
		resp.serveFull(w, r, path, meta)

	case err == nil:
		resp.servePartial(w, path, meta, br)

	case errors.Is(err, httprange.ErrUnsatisfiable):
		logging.Debug("stream: unsatisfiable range %q for size %d", rangeHeader, meta.Size)
		metrics.StreamRequestsTotal.WithLabelValues("unsatisfiable").Inc()
		w.Header().Set("Content-Range", httprange.UnsatisfiableContentRange(meta.Size))
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)

	default:
		logging.Debug("stream: malformed range %q: %v", rangeHeader, err)
		metrics.StreamRequestsTotal.WithLabelValues("malformed").Inc()
		http.Error(w, fmt.Sprintf("Invalid Range header: %v", err), http.StatusBadRequest)
	}
}

// serveFull streams the entire file with a 200 response.
func (resp *Responder) serveFull(w http.ResponseWriter, r *http.Request, path string, meta videofile.Metadata) {
	f, err := os.Open(path)
	if err != nil {
		logging.Error("stream: failed to open %s: %v", path, err)
		metrics.StreamRequestsTotal.WithLabelValues("error").Inc()
		http.Error(w, "Failed to open video file", http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("failed to close video file %s: %v", path, err)
		}
	}()

	w.Header().Set("Content-Type", resp.contentTypeFor(meta))
	w.Header().Set("Content-Length", strconv.FormatUint(meta.Size, 10))
	w.WriteHeader(http.StatusOK)

	metrics.StreamRequestsTotal.WithLabelValues("full").Inc()

	written, err := CopyWithTimeout(r.Context(), w, f, resp.writerConfig)
	metrics.StreamBytesTotal.Add(float64(written))
	if err != nil && !errors.Is(err, ErrClientGone) && !errors.Is(err, ErrWriteTimeout) {
		logging.Error("stream: full-file copy failed for %s: %v", path, err)
	}
}

// servePartial reads the exact chunk and writes a 206 response.
func (resp *Responder) servePartial(w http.ResponseWriter, path string, meta videofile.Metadata, br httprange.ByteRange) {
	chunk, err := videofile.ReadChunk(path, br)
	if err != nil {
		logging.Error("stream: chunk read failed for %s: %v", path, err)
		metrics.StreamRequestsTotal.WithLabelValues("error").Inc()
		http.Error(w, "Failed to read video chunk", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", resp.contentTypeFor(meta))
	w.Header().Set("Content-Range", br.ContentRange(meta.Size))
	w.Header().Set("Content-Length", strconv.FormatUint(br.Length(), 10))
	w.WriteHeader(http.StatusPartialContent)

	metrics.StreamRequestsTotal.WithLabelValues("partial").Inc()

	n, err := w.Write(chunk)
	metrics.StreamBytesTotal.Add(float64(n))
	if err != nil {
		logging.Debug("stream: partial write interrupted for %s: %v", path, err)
	}
}
