// Package jobs tracks video creation jobs and orchestrates their execution.
//
// A job moves Pending -> InProgress -> Completed or Failed; terminal states
// are final. The store is in-memory and process-scoped. The orchestrator
// validates a request before any job exists, then drives the encoder
// synchronously and records the outcome on the job.
package jobs
