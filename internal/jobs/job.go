package jobs

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a job id is not in the store.
	ErrNotFound = errors.New("job not found")
	// ErrAlreadyExists is returned when creating a job with a taken id.
	ErrAlreadyExists = errors.New("job already exists")
	// ErrAlreadyTerminal is returned when transitioning a completed or
	// failed job.
	ErrAlreadyTerminal = errors.New("job already in a terminal state")
)

// Status is the lifecycle state of a video creation job.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the status is final. Terminal jobs never change.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Job records one video creation request from acceptance to completion.
type Job struct {
	ID        string    `json:"jobId"`
	VideoID   string    `json:"videoId"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	// OutputPath is the absolute destination of the encoded video.
	OutputPath string `json:"outputPath"`
	// ErrorMessage is the failure diagnostic, empty unless Status is failed.
	ErrorMessage string `json:"errorMessage,omitempty"`
	// TotalFrames is the number of source images.
	TotalFrames int `json:"totalFrames"`
	// EstimatedDuration is the expected video length in seconds.
	EstimatedDuration float64 `json:"estimatedDuration"`
}
