package appointment

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/lock"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

const (
	slotLockTTL   = 10 * time.Second
	slotLockWait  = 500 * time.Millisecond
	slotLockRetry = 50 * time.Millisecond
)

// ======================================================
// COLLABORATORS
// ======================================================

type Notifier interface {
	Notify(ctx context.Context, phone string, body string) bool
}

type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName      string
	ClientPhone     string
	BarberName      string
	AppointmentTime time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	barbers  *barber.Directory
	notifier Notifier
	locker   lock.Locker
	lockWait time.Duration
	audit    AuditDispatcher
	metrics  metrics.Recorder
	logger   *slog.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	barbers *barber.Directory,
	notifier Notifier,
	locker lock.Locker,
	auditor AuditDispatcher,
	rec metrics.Recorder,
	logger *slog.Logger,
) *CreateAppointment {
	if locker == nil {
		locker = lock.Noop{}
	}
	if auditor == nil {
		auditor = audit.Discard{}
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &CreateAppointment{
		repo:     repo,
		barbers:  barbers,
		notifier: notifier,
		locker:   locker,
		lockWait: slotLockWait,
		audit:    auditor,
		metrics:  rec,
		logger:   logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates the request, reserves the hour and persists it.
// Checks run in order and stop at the first failure. The barber is
// notified after the row is stored; that step cannot fail the booking.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	clientName := strings.TrimSpace(in.ClientName)
	clientPhone := strings.TrimSpace(in.ClientPhone)
	barberName := strings.TrimSpace(in.BarberName)

	if clientName == "" || clientPhone == "" || barberName == "" || in.AppointmentTime.IsZero() {
		return nil, uc.reject(httperr.CodeInvalidRequest)
	}

	b, ok := uc.barbers.FindByName(barberName)
	if !ok {
		return nil, uc.reject(httperr.CodeBarberNotFound)
	}

	// --------------------------------------------------
	// 2️⃣ Dia e horário de funcionamento (hora local)
	// --------------------------------------------------
	calendar := uc.barbers.Calendar()
	local := calendar.Local(in.AppointmentTime)

	if !calendar.IsWorkingDay(local) {
		return nil, uc.reject(httperr.CodeClosedDay)
	}
	if !calendar.IsWorkingHours(local) {
		return nil, uc.reject(httperr.CodeOutsideHours)
	}

	// --------------------------------------------------
	// 3️⃣ Conflito na mesma hora
	// --------------------------------------------------
	hourStart, hourEnd := calendar.HourWindow(local)

	release, held, err := uc.acquireSlot(ctx, lock.SlotKey(b.Name, hourStart))
	switch {
	case err != nil:
		// lock backend down: the unique index still decides
		uc.logger.Warn("slot lock unavailable", "barber", b.Name, "err", err)
	case !held:
		// holder may still fail; the store check and unique index decide
		uc.logger.Warn("slot lock busy, checking store", "barber", b.Name)
	default:
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				uc.logger.Warn("slot lock release failed", "barber", b.Name, "err", err)
			}
		}()
	}

	taken, err := uc.repo.HasAppointmentInRange(ctx, b.Name, hourStart, hourEnd)
	if err != nil {
		uc.logger.Error("availability check failed", "barber", b.Name, "err", err)
		uc.metrics.BookingRejected("availability_check_failed")
		return nil, httperr.ErrStore("availability_check_failed", err)
	}
	if taken {
		uc.conflict(b.Name, hourStart)
		return nil, uc.reject(httperr.CodeSlotTaken)
	}

	// --------------------------------------------------
	// 4️⃣ Persistência
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientName:      clientName,
		PhoneNumber:     clientPhone,
		BarberName:      b.Name,
		AppointmentTime: in.AppointmentTime,
		SlotHour:        hourStart,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			uc.conflict(b.Name, hourStart)
			return nil, uc.reject(httperr.CodeSlotTaken)
		}
		uc.logger.Error("create appointment failed", "barber", b.Name, "err", err)
		uc.metrics.BookingRejected("create_failed")
		return nil, httperr.ErrStore("create_failed", err)
	}

	uc.metrics.BookingCreated(b.Name)
	uc.audit.Dispatch(audit.Event{
		Action:     audit.ActionAppointmentCreated,
		BarberName: b.Name,
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	// --------------------------------------------------
	// 5️⃣ Aviso ao barbeiro (best effort)
	// --------------------------------------------------
	if b.HasPhone() {
		uc.notifier.Notify(
			context.WithoutCancel(ctx),
			b.Phone,
			notify.NewBookingMessage(*ap, calendar.Location),
		)
	} else {
		uc.logger.Warn("barber has no phone configured", "barber", b.Name)
	}

	return ap, nil
}

// acquireSlot retries a busy lease until lockWait runs out.
func (uc *CreateAppointment) acquireSlot(ctx context.Context, key string) (lock.Release, bool, error) {
	deadline := time.Now().Add(uc.lockWait)
	for {
		release, held, err := uc.locker.Acquire(ctx, key, slotLockTTL)
		if err != nil || held || !time.Now().Before(deadline) {
			return release, held, err
		}

		select {
		case <-ctx.Done():
			return nil, false, nil
		case <-time.After(slotLockRetry):
		}
	}
}

func (uc *CreateAppointment) reject(code string) error {
	uc.metrics.BookingRejected(code)
	return httperr.ErrBusiness(code)
}

func (uc *CreateAppointment) conflict(barberName string, hourStart time.Time) {
	uc.audit.Dispatch(audit.Event{
		Action:     audit.ActionAppointmentConflict,
		BarberName: barberName,
		Entity:     "appointment",
		Metadata:   map[string]any{"slot_hour": hourStart},
	})
}
