package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"student-productivity/internal/reminder"
	"student-productivity/pkg/log"
)

// Config controls when the reminder job fires.
type Config struct {
	// Spec is a standard five-field cron expression.
	Spec       string
	RunTimeout time.Duration
	Location   *time.Location
}

// Scheduler runs reminder.UseCase.Run on a cron schedule. Overlapping runs
// are skipped.
type Scheduler struct {
	cron    *cron.Cron
	uc      reminder.UseCase
	timeout time.Duration
	loc     *time.Location
	l       log.Logger
}

// New validates cfg.Spec and registers the job. Call Start to begin.
func New(uc reminder.UseCase, cfg Config, l log.Logger) (*Scheduler, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	s := &Scheduler{
		uc:      uc,
		timeout: cfg.RunTimeout,
		loc:     loc,
		l:       l,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}
	if _, err := s.cron.AddFunc(cfg.Spec, s.runOnce); err != nil {
		return nil, fmt.Errorf("reminder: invalid cron spec %q: %w", cfg.Spec, err)
	}
	return s, nil
}

// Start begins firing the job in the background.
func (s *Scheduler) Start(ctx context.Context) {
	s.l.Infof(ctx, "reminder scheduler started, next run at %s", s.Next().Format(time.RFC3339))
	s.cron.Start()
}

// Next returns the next scheduled run time.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(time.Now().In(s.loc))
}

// Stop stops the scheduler and waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunNow executes one pass synchronously.
func (s *Scheduler) RunNow(ctx context.Context) (reminder.RunOutput, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.uc.Run(ctx)
}

func (s *Scheduler) runOnce() {
	ctx := context.Background()
	if _, err := s.RunNow(ctx); err != nil {
		s.l.Errorf(ctx, "reminder run failed: %v", err)
	}
}
