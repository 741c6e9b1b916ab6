package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"video-streamer/internal/encoder"
	"video-streamer/internal/imageset"
	"video-streamer/internal/jobs"
	"video-streamer/internal/logging"
)

// CreateVideo accepts a video creation request and runs it to completion.
// The response is the final job record; encoder failures are reported on the
// job rather than as an HTTP error.
func (h *Handlers) CreateVideo(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	videoID := query.Get("video_id")
	if videoID == "" {
		writeJSONError(w, "video_id is required", http.StatusBadRequest)
		return
	}
	outputPath := query.Get("output_path")
	if outputPath == "" {
		writeJSONError(w, "output_path is required", http.StatusBadRequest)
		return
	}

	images, err := parseImageParams(query)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	width := h.config.DefaultImageWidth
	if v := query.Get("width"); v != "" {
		if width, err = strconv.Atoi(v); err != nil {
			writeJSONError(w, "width must be an integer", http.StatusBadRequest)
			return
		}
	}
	height := h.config.DefaultImageHeight
	if v := query.Get("height"); v != "" {
		if height, err = strconv.Atoi(v); err != nil {
			writeJSONError(w, "height must be an integer", http.StatusBadRequest)
			return
		}
	}
	duration := h.config.DefaultDuration
	if v := query.Get("duration"); v != "" {
		if duration, err = strconv.ParseFloat(v, 64); err != nil {
			writeJSONError(w, "duration must be a number", http.StatusBadRequest)
			return
		}
	}

	spec, err := encoder.NewSpec(width, height, duration)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Probed per request so the service recovers when the binary shows up
	// after startup.
	if !h.invoker.Available() {
		writeJSONError(w, "encoder is not available on this host", http.StatusServiceUnavailable)
		return
	}

	job, err := h.orchestrator.CreateVideo(r.Context(), jobs.CreateRequest{
		VideoID:    videoID,
		OutputPath: outputPath,
		Images:     images,
		Spec:       spec,
	})
	if err != nil {
		var valErr *imageset.ValidationError
		if errors.As(err, &valErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, map[string]interface{}{
				"error":    "image validation failed",
				"failures": valErr.Failures,
			})
			return
		}
		logging.Error("create-video request rejected: %v", err)
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, job)
}

// GetJobStatus returns the job record for a job id.
func (h *Handlers) GetJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["job_id"]

	job, err := h.store.Get(jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			writeJSONError(w, "job not found", http.StatusNotFound)
		} else {
			writeJSONError(w, "failed to look up job", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, job)
}

// ValidateImagesResponse is the response body for GET /validate-images.
type ValidateImagesResponse struct {
	Valid   bool              `json:"valid"`
	Results []imageset.Result `json:"results"`
}

// ValidateImages reports per-image validity without creating a job.
func (h *Handlers) ValidateImages(w http.ResponseWriter, r *http.Request) {
	images, err := parseImageParams(r.URL.Query())
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := imageset.Validate(images)
	var valErr *imageset.ValidationError
	if err != nil && !errors.As(err, &valErr) {
		logging.Error("image validation failed: %v", err)
		writeJSONError(w, "failed to validate images", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, ValidateImagesResponse{
		Valid:   err == nil,
		Results: results,
	})
}
