package jobs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"video-streamer/internal/encoder"
	"video-streamer/internal/imageset"
	"video-streamer/internal/logging"
	"video-streamer/internal/metrics"
	"video-streamer/internal/workers"
)

// Runner executes a prepared encoder invocation. *encoder.Invoker satisfies
// it; tests substitute a stub.
type Runner interface {
	Run(ctx context.Context, args []string, outputPath string) error
}

// CreateRequest describes one video creation job.
type CreateRequest struct {
	VideoID    string
	OutputPath string
	Images     []string
	Spec       encoder.Spec
}

// Orchestrator drives a creation request through validation, job tracking,
// and the encoder. Encodes run synchronously in the calling goroutine; a
// semaphore caps how many run at once.
type Orchestrator struct {
	store  *Store
	runner Runner
	cfg    encoder.Config
	sem    chan struct{}
}

// NewOrchestrator creates an Orchestrator backed by the given store and
// runner. maxConcurrent caps simultaneous encodes; values below 1 fall back
// to one encode per available CPU.
func NewOrchestrator(store *Store, runner Runner, cfg encoder.Config, maxConcurrent int) *Orchestrator {
	if maxConcurrent < 1 {
		maxConcurrent = workers.ForCPU(0)
	}
	return &Orchestrator{
		store:  store,
		runner: runner,
		cfg:    cfg,
		sem:    make(chan struct{}, maxConcurrent),
	}
}

// CreateVideo validates the request, registers a job, and runs the encoder
// to completion. Validation failures reject the request without creating a
// job; encoder failures are recorded on the job. The returned Job is the
// final view either way.
func (o *Orchestrator) CreateVideo(ctx context.Context, req CreateRequest) (Job, error) {
	if err := req.Spec.Validate(); err != nil {
		metrics.EncodeJobsTotal.WithLabelValues("rejected").Inc()
		return Job{}, err
	}
	if len(req.Images) == 0 {
		metrics.EncodeJobsTotal.WithLabelValues("rejected").Inc()
		return Job{}, fmt.Errorf("no images provided")
	}

	if _, err := imageset.Validate(req.Images); err != nil {
		metrics.EncodeJobsTotal.WithLabelValues("rejected").Inc()
		return Job{}, err
	}

	absOutput, err := filepath.Abs(req.OutputPath)
	if err != nil {
		metrics.EncodeJobsTotal.WithLabelValues("rejected").Inc()
		return Job{}, fmt.Errorf("failed to resolve output path: %w", err)
	}

	job := Job{
		ID:                uuid.NewString(),
		VideoID:           req.VideoID,
		Status:            StatusPending,
		CreatedAt:         time.Now().UTC(),
		OutputPath:        absOutput,
		TotalFrames:       len(req.Images),
		EstimatedDuration: float64(len(req.Images)) * req.Spec.DurationSeconds,
	}
	if err := o.store.Create(job); err != nil {
		return Job{}, err
	}

	logging.Info("starting video creation job %s: video %s, %d images -> %s",
		job.ID, job.VideoID, len(req.Images), absOutput)

	if encodeErr := o.encode(ctx, job.ID, req, absOutput); encodeErr != nil {
		metrics.EncodeJobsTotal.WithLabelValues("failed").Inc()
		o.mustTransition(job.ID, StatusFailed, encodeErr.Error())
	} else {
		metrics.EncodeJobsTotal.WithLabelValues("completed").Inc()
		o.mustTransition(job.ID, StatusCompleted, "")
	}

	return o.store.Get(job.ID)
}

// encode runs the encoder for one job, holding a semaphore slot for the
// duration. The store lock is never held while the encoder runs.
func (o *Orchestrator) encode(ctx context.Context, jobID string, req CreateRequest, absOutput string) error {
	select {
	case o.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-o.sem }()

	if err := o.store.Transition(jobID, StatusInProgress, ""); err != nil {
		return err
	}

	listFile, cleanup, err := encoder.WriteListFile(req.Images, req.Spec.DurationSeconds)
	if err != nil {
		return fmt.Errorf("failed to prepare image list: %w", err)
	}
	defer cleanup()

	args, err := encoder.BuildArgs(listFile, req.Spec, absOutput, o.cfg)
	if err != nil {
		return err
	}

	return o.runner.Run(ctx, args, absOutput)
}

// mustTransition records a terminal status. The job was created by this
// orchestrator and is not terminal yet, so failure here indicates a bug.
func (o *Orchestrator) mustTransition(jobID string, status Status, errMsg string) {
	if err := o.store.Transition(jobID, status, errMsg); err != nil {
		logging.Error("failed to transition job %s to %s: %v", jobID, status, err)
	}
}
