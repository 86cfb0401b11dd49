// Package appointmenttest provides an in-memory appointment.Repository
// for tests. It enforces the same (barber, slot hour) uniqueness as the
// postgres schema.
package appointmenttest

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.Appointment

	// Injected failures, checked before each operation.
	CheckErr  error
	CreateErr error
	ListErr   error
	DeleteErr error

	Creates int
	Checks  int
	Deletes int
}

func New(seed ...models.Appointment) *Repository {
	r := &Repository{}
	for _, ap := range seed {
		ap := ap
		if ap.SlotHour.IsZero() {
			// Whole-hour offsets only; good enough for seeded fixtures.
			ap.SlotHour = ap.AppointmentTime.Truncate(time.Hour)
		}
		_ = r.CreateAppointment(context.Background(), &ap)
	}
	r.Creates = 0
	return r
}

func (r *Repository) HasAppointmentInRange(
	_ context.Context,
	barberName string,
	start time.Time,
	end time.Time,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Checks++
	if r.CheckErr != nil {
		return false, r.CheckErr
	}

	for _, ap := range r.rows {
		if ap.BarberName == barberName &&
			!ap.AppointmentTime.Before(start) &&
			ap.AppointmentTime.Before(end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Creates++
	if r.CreateErr != nil {
		return r.CreateErr
	}

	for _, existing := range r.rows {
		if existing.BarberName == ap.BarberName && existing.SlotHour.Equal(ap.SlotHour) {
			return domain.ErrSlotConflict
		}
	}

	r.nextID++
	ap.ID = r.nextID
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = time.Now()
	}
	r.rows = append(r.rows, *ap)
	return nil
}

func (r *Repository) ListAppointmentsForPeriod(
	_ context.Context,
	barberName string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ListErr != nil {
		return nil, r.ListErr
	}

	var out []models.Appointment
	for _, ap := range r.rows {
		if ap.BarberName == barberName &&
			!ap.AppointmentTime.Before(start) &&
			!ap.AppointmentTime.After(end) {
			out = append(out, ap)
		}
	}
	sortByTime(out)
	return out, nil
}

func (r *Repository) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ListErr != nil {
		return nil, r.ListErr
	}

	out := append([]models.Appointment(nil), r.rows...)
	sortByTime(out)
	return out, nil
}

func (r *Repository) DeleteAppointmentsBefore(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Deletes++
	if r.DeleteErr != nil {
		return 0, r.DeleteErr
	}

	kept := r.rows[:0]
	var deleted int64
	for _, ap := range r.rows {
		if ap.AppointmentTime.Before(before) {
			deleted++
			continue
		}
		kept = append(kept, ap)
	}
	r.rows = kept
	return deleted, nil
}

// All returns a snapshot of the stored rows, ascending by time.
func (r *Repository) All() []models.Appointment {
	out, _ := (&Repository{rows: r.snapshot()}).ListAppointments(context.Background())
	return out
}

func (r *Repository) snapshot() []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Appointment(nil), r.rows...)
}

func sortByTime(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		return aps[i].AppointmentTime.Before(aps[j].AppointmentTime)
	})
}

var _ domain.Repository = (*Repository)(nil)
