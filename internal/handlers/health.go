package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"video-streamer/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// HealthResponse contains the health check response
type HealthResponse struct {
	Status           string `json:"status"`
	Version          string `json:"version"`
	Uptime           string `json:"uptime"`
	EncoderAvailable bool   `json:"encoderAvailable"`
	VideoFileExists  bool   `json:"videoFileExists"`
	JobCount         int    `json:"jobCount"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// HealthCheck returns the health status of the service. Missing video file
// or encoder degrade the status but the service still answers 200; both
// conditions fail per-request rather than process-wide.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	videoExists := false
	if info, err := os.Stat(h.config.VideoPath); err == nil && !info.IsDir() {
		videoExists = true
	}

	encoderAvailable := h.invoker.Available()

	response := HealthResponse{
		Status:           statusHealthy,
		Version:          startup.Version,
		Uptime:           time.Since(h.startTime).Round(time.Second).String(),
		EncoderAvailable: encoderAvailable,
		VideoFileExists:  videoExists,
		JobCount:         h.store.Len(),
		GoVersion:        runtime.Version(),
		NumCPU:           runtime.NumCPU(),
		NumGoroutine:     runtime.NumGoroutine(),
	}

	if !encoderAvailable || !videoExists {
		response.Status = statusDegraded
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// For HEAD requests, only send headers (no body)
	if r.Method != http.MethodHead {
		writeJSON(w, map[string]string{
			"status": "alive",
		})
	}
}

// ReadinessCheck returns 200 once the server is accepting traffic. There is
// no warm-up phase, so readiness matches liveness.
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	writeJSON(w, map[string]string{
		"status": "ready",
	})
}
