package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs queue processing cycles on a fixed interval.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a scheduler that triggers a queue cycle every
// interval.
func NewScheduler(eng *Engine, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		engine: eng,
		log:    log,
	}

	if _, err := s.cron.AddFunc("@every "+interval.String(), s.runQueueCycle); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	s.log.Info("scheduler starting", "jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done once any
// running job has finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the scheduled job entries.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runQueueCycle() {
	ctx := context.Background()
	if err := s.engine.RunQueueCycle(ctx); err != nil {
		s.log.Error("scheduled queue cycle failed", "error", err)
	}
}
