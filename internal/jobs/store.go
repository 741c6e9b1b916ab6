package jobs

import (
	"fmt"
	"sync"

	"video-streamer/internal/logging"
)

// Store is an in-memory job registry safe for concurrent use. Jobs live for
// the lifetime of the process.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{jobs: make(map[string]Job)}
}

// Create registers a new job. The job id must be unused.
func (s *Store) Create(job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[job.ID]; ok {
		return fmt.Errorf("job %s: %w", job.ID, ErrAlreadyExists)
	}
	s.jobs[job.ID] = job
	logging.Debug("created job %s (video %s, %d frames)", job.ID, job.VideoID, job.TotalFrames)
	return nil
}

// Get returns a copy of the job with the given id.
func (s *Store) Get(id string) (Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return Job{}, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	return job, nil
}

// Transition moves a job to a new status. Terminal jobs cannot transition
// again. errMsg is recorded only when the new status is failed.
func (s *Store) Transition(id string, status Status, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}
	if job.Status.Terminal() {
		return fmt.Errorf("job %s is %s: %w", id, job.Status, ErrAlreadyTerminal)
	}

	job.Status = status
	if status == StatusFailed {
		job.ErrorMessage = errMsg
	}
	s.jobs[id] = job
	logging.Debug("job %s transitioned to %s", id, status)
	return nil
}

// Len returns the number of jobs in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}
