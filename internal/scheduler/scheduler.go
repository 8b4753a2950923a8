package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers the analysis run on a cron schedule. It owns no
// business logic: the run function is registered by the entry point and
// invoked with the scheduler's context.
type Scheduler struct {
	cron    *cron.Cron
	spec    string
	ctx     context.Context
	cancel  context.CancelFunc
	runFunc func(ctx context.Context) error
}

// New creates a scheduler for a standard 5-field cron spec, evaluated in
// local time (the original schedule was Mondays at 09:00 local).
func New(spec string) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.Local)),
		spec:   spec,
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetRunFunction registers the function invoked on every trigger.
func (s *Scheduler) SetRunFunction(f func(ctx context.Context) error) {
	s.runFunc = f
}

// Start registers the cron entry and begins triggering. It fails fast on an
// invalid spec or a missing run function.
func (s *Scheduler) Start() error {
	if s.runFunc == nil {
		return fmt.Errorf("run function not set")
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		log.Printf("⏰ scheduled analysis triggered (%s)", s.spec)
		if err := s.runFunc(s.ctx); err != nil {
			log.Printf("❌ scheduled analysis failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", s.spec, err)
	}

	s.cron.Start()
	log.Printf("📅 scheduler started, analysis will run on %q", s.spec)
	return nil
}

// Stop halts triggering, waits for an in-flight run's cron slot to drain and
// cancels the run context.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Printf("📅 scheduler stopped")
}

// IsRunning reports whether any cron entry is registered.
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
