package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"video-streamer/internal/logging"
)

// writeJSON encodes v as JSON and writes it to the response writer.
// Any encoding or write errors are logged since we typically cannot
// recover from them in an HTTP handler context.
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes an error response as JSON with the given status code.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, map[string]string{"error": message})
}

var imageParamPattern = regexp.MustCompile(`^image(\d+)$`)

// parseImageParams extracts image1..imageN query parameters in order.
// Numbering must start at 1 and be contiguous; gaps or duplicates are a
// malformed request.
func parseImageParams(query url.Values) ([]string, error) {
	indexed := make(map[int]string)
	for key, values := range query {
		m := imageParamPattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid image parameter %q", key)
		}
		if len(values) != 1 {
			return nil, fmt.Errorf("image parameter %q given %d times", key, len(values))
		}
		if values[0] == "" {
			return nil, fmt.Errorf("image parameter %q is empty", key)
		}
		// image1 and image01 parse to the same index; map iteration order
		// would pick a winner at random, so reject the collision instead.
		if _, dup := indexed[n]; dup {
			return nil, fmt.Errorf("duplicate image parameter for index %d", n)
		}
		indexed[n] = values[0]
	}

	if len(indexed) == 0 {
		return nil, fmt.Errorf("at least one image parameter (image1, image2, ...) is required")
	}

	images := make([]string, 0, len(indexed))
	for i := 1; i <= len(indexed); i++ {
		path, ok := indexed[i]
		if !ok {
			return nil, fmt.Errorf("image parameters must be numbered contiguously from 1, missing image%d", i)
		}
		images = append(images, path)
	}
	return images, nil
}
