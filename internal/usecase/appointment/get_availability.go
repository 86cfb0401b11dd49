package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// GetBookedHours answers which hours of a business day a barber already
// has taken. It never rejects anything.
type GetBookedHours struct {
	repo     domain.Repository
	calendar domain.WorkingCalendar
}

func NewGetBookedHours(
	repo domain.Repository,
	calendar domain.WorkingCalendar,
) *GetBookedHours {
	return &GetBookedHours{repo: repo, calendar: calendar}
}

func (uc *GetBookedHours) Execute(
	ctx context.Context,
	barberName string,
	date time.Time,
) ([]int, error) {

	start, end := uc.calendar.DayWindow(date)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, barberName, start, end)
	if err != nil {
		return nil, httperr.ErrStore("list_failed", err)
	}

	return domain.BookedHours(appointments, uc.calendar.Location), nil
}
