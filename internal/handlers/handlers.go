package handlers

import (
	"time"

	"video-streamer/internal/encoder"
	"video-streamer/internal/jobs"
	"video-streamer/internal/startup"
	"video-streamer/internal/streaming"
)

type Handlers struct {
	responder    *streaming.Responder
	store        *jobs.Store
	orchestrator *jobs.Orchestrator
	invoker      *encoder.Invoker
	config       *startup.Config
	startTime    time.Time
}

func New(store *jobs.Store, orch *jobs.Orchestrator, inv *encoder.Invoker, config *startup.Config) *Handlers {
	return &Handlers{
		responder:    streaming.NewResponder(streaming.DefaultTimeoutWriterConfig(), config.ContentType),
		store:        store,
		orchestrator: orch,
		invoker:      inv,
		config:       config,
		startTime:    time.Now(),
	}
}
