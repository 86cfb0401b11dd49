package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ListAppointmentsByDate returns a barber's appointments on the business
// day containing date, ascending by time.
type ListAppointmentsByDate struct {
	repo     domain.Repository
	calendar domain.WorkingCalendar
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	calendar domain.WorkingCalendar,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:     repo,
		calendar: calendar,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberName string,
	date time.Time,
) ([]models.Appointment, error) {

	start, end := uc.calendar.DayWindow(date)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, barberName, start, end)
	if err != nil {
		return nil, httperr.ErrStore("list_failed", err)
	}

	return appointments, nil
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, httperr.ErrStore("list_failed", err)
	}
	return appointments, nil
}
