package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/lock"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// sweepLockTTL outlives the day so a replica starting late cannot rerun it.
const sweepLockTTL = 25 * time.Hour

// ======================================================
// COLLABORATORS
// ======================================================

type Notifier interface {
	Notify(ctx context.Context, phone string, body string) bool
}

type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

// DayAppointments is the read side the sweep needs; the appointment use
// case ListAppointmentsByDate satisfies it.
type DayAppointments interface {
	Execute(ctx context.Context, barberName string, date time.Time) ([]models.Appointment, error)
}

type Cleaner interface {
	Execute(ctx context.Context, now time.Time) (int64, error)
}

// ======================================================
// RESULT
// ======================================================

type SweepResult struct {
	RunID    string
	Skipped  bool
	Notified int
	Deleted  int64
}

// ======================================================
// USE CASE
// ======================================================

type DailySweep struct {
	barbers  *barber.Directory
	day      DayAppointments
	cleaner  Cleaner
	notifier Notifier
	locker   lock.Locker
	audit    AuditDispatcher
	metrics  metrics.Recorder
	clock    timezone.Clock
	logger   *slog.Logger
}

func NewDailySweep(
	barbers *barber.Directory,
	day DayAppointments,
	cleaner Cleaner,
	notifier Notifier,
	locker lock.Locker,
	auditor AuditDispatcher,
	rec metrics.Recorder,
	clock timezone.Clock,
	logger *slog.Logger,
) *DailySweep {
	if locker == nil {
		locker = lock.Noop{}
	}
	if auditor == nil {
		auditor = audit.Discard{}
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	if clock == nil {
		clock = timezone.ClockIn(barbers.Location())
	}
	return &DailySweep{
		barbers:  barbers,
		day:      day,
		cleaner:  cleaner,
		notifier: notifier,
		locker:   locker,
		audit:    auditor,
		metrics:  rec,
		clock:    clock,
		logger:   logger,
	}
}

// Execute sends each barber today's schedule, in directory order, then
// removes past appointments. A failed schedule query ends the run before
// cleanup; send and cleanup failures are only logged.
func (s *DailySweep) Execute(ctx context.Context) (SweepResult, error) {
	now := s.clock()
	res := SweepResult{RunID: uuid.NewString()}
	log := s.logger.With("run_id", res.RunID)

	// --------------------------------------------------
	// 1️⃣ Uma execução por dia
	// --------------------------------------------------
	release, held, err := s.locker.Acquire(ctx, lock.SweepKey(s.barbers.Calendar().Local(now)), sweepLockTTL)
	switch {
	case err != nil:
		log.Warn("sweep lock unavailable", "err", err)
	case !held:
		log.Info("daily sweep already ran today")
		res.Skipped = true
		return res, nil
	}

	// --------------------------------------------------
	// 2️⃣ Agenda do dia por barbeiro
	// --------------------------------------------------
	loc := s.barbers.Location()
	for _, b := range s.barbers.List() {
		aps, err := s.day.Execute(ctx, b.Name, now)
		if err != nil {
			log.Error("daily sweep aborted", "barber", b.Name, "err", httperr.Cause(err))
			s.metrics.SweepRun(metrics.SweepFailed)
			s.releaseDay(ctx, release, log)
			return res, err
		}

		if !b.HasPhone() {
			log.Warn("barber has no phone configured", "barber", b.Name)
			continue
		}
		if s.notifier.Notify(ctx, b.Phone, notify.DailyScheduleMessage(b.Name, aps, loc)) {
			res.Notified++
		}
	}

	// --------------------------------------------------
	// 3️⃣ Limpeza dos horários passados
	// --------------------------------------------------
	deleted, err := s.cleaner.Execute(ctx, now)
	if err != nil {
		log.Error("cleanup failed", "err", httperr.Cause(err))
	}
	res.Deleted = deleted

	s.metrics.SweepRun(metrics.SweepOK)
	s.audit.Dispatch(audit.Event{
		Action: audit.ActionDailySweepCompleted,
		Entity: "sweep",
		Metadata: map[string]any{
			"run_id":   res.RunID,
			"notified": res.Notified,
			"deleted":  res.Deleted,
		},
	})
	log.Info("daily sweep completed", "notified", res.Notified, "deleted", res.Deleted)

	return res, nil
}

// releaseDay gives the day key back so a failed run can be retried.
// release is nil when the lease was never taken.
func (s *DailySweep) releaseDay(ctx context.Context, release lock.Release, log *slog.Logger) {
	if release == nil {
		return
	}
	if err := release(context.WithoutCancel(ctx)); err != nil {
		log.Warn("sweep lock release failed", "err", err)
	}
}

// Run is the scheduler entry point. Execute logs and counts its own
// failures, so the result is not needed here.
func (s *DailySweep) Run() {
	s.Execute(context.Background())
}
