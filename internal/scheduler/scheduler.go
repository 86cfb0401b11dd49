package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler fires one job on a cron expression evaluated in a fixed zone.
type Scheduler struct {
	cron   *cron.Cron
	entry  cron.EntryID
	logger *slog.Logger
}

// New parses expr with the standard five-field syntax (descriptors such
// as @daily and @every are accepted too). A panicking job is logged and
// the next firing still happens; a firing that would overlap a running
// one is skipped.
func New(expr string, loc *time.Location, job func(), logger *slog.Logger) (*Scheduler, error) {
	if loc == nil {
		return nil, fmt.Errorf("scheduler: location is required")
	}

	cl := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cl),
		// Recover must sit inside SkipIfStillRunning, otherwise a panic
		// never hands the run token back and every later firing is skipped.
		cron.WithChain(
			cron.SkipIfStillRunning(cl),
			cron.Recover(cl),
		),
	)

	id, err := c.AddFunc(expr, job)
	if err != nil {
		return nil, fmt.Errorf("scheduler: invalid schedule %q: %w", expr, err)
	}

	return &Scheduler{cron: c, entry: id, logger: logger}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "next_run", s.Next())
}

// Next is the upcoming firing; zero before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

// Stop prevents new firings and waits for a running job, or for ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts cron.Logger onto slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "err", err)...)
}
