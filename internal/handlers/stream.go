package handlers

import (
	"net/http"
)

// StreamVideo serves the configured video file with byte-range support.
func (h *Handlers) StreamVideo(w http.ResponseWriter, r *http.Request) {
	h.responder.ServeVideo(w, r, h.config.VideoPath)
}
