package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment/appointmenttest"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func seededRepo(t *testing.T) (*appointmenttest.Repository, *time.Location) {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	at := func(d, h, m int) time.Time { return time.Date(2024, 6, d, h, m, 0, 0, loc) }

	return appointmenttest.New(
		models.Appointment{BarberName: "Carlão", ClientName: "B", AppointmentTime: at(4, 14, 0)},
		models.Appointment{BarberName: "Carlão", ClientName: "A", AppointmentTime: at(4, 9, 0)},
		models.Appointment{BarberName: "Carlão", ClientName: "C", AppointmentTime: at(4, 0, 0)},
		models.Appointment{BarberName: "Carlão", ClientName: "D", AppointmentTime: at(4, 23, 59)},
		models.Appointment{BarberName: "Carlão", ClientName: "next", AppointmentTime: at(5, 0, 0)},
		models.Appointment{BarberName: "Carlão", ClientName: "prev", AppointmentTime: at(3, 23, 0)},
		models.Appointment{BarberName: "Tigrão", ClientName: "T", AppointmentTime: at(4, 10, 0)},
	), loc
}

func TestGetBookedHours(t *testing.T) {
	repo, loc := seededRepo(t)
	uc := NewGetBookedHours(repo, domain.DefaultCalendar(loc))
	ctx := context.Background()

	hours, err := uc.Execute(ctx, "Carlão", time.Date(2024, 6, 4, 12, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 9, 14, 23}, hours)

	again, err := uc.Execute(ctx, "Carlão", time.Date(2024, 6, 4, 12, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, hours, again)

	tigrao, err := uc.Execute(ctx, "Tigrão", time.Date(2024, 6, 4, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, []int{10}, tigrao)

	none, err := uc.Execute(ctx, "Tigrão", time.Date(2024, 6, 6, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetBookedHours_StoreError(t *testing.T) {
	repo, loc := seededRepo(t)
	repo.ListErr = errors.New("timeout")

	_, err := NewGetBookedHours(repo, domain.DefaultCalendar(loc)).Execute(context.Background(), "Carlão", time.Now())
	require.Error(t, err)
	assert.True(t, httperr.IsStore(err))
}

func TestListAppointmentsByDate(t *testing.T) {
	repo, loc := seededRepo(t)
	uc := NewListAppointmentsByDate(repo, domain.DefaultCalendar(loc))

	aps, err := uc.Execute(context.Background(), "Carlão", time.Date(2024, 6, 4, 8, 0, 0, 0, loc))
	require.NoError(t, err)

	var names []string
	for _, ap := range aps {
		names = append(names, ap.ClientName)
	}
	assert.Equal(t, []string{"C", "A", "B", "D"}, names)

	// The UTC instant 2024-06-05T02:00Z is still the 4th locally.
	same, err := uc.Execute(context.Background(), "Carlão", time.Date(2024, 6, 5, 2, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, aps, same)
}

func TestListAppointments(t *testing.T) {
	repo, _ := seededRepo(t)

	aps, err := NewListAppointments(repo).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, aps, 7)
	assert.Equal(t, "prev", aps[0].ClientName)
	assert.Equal(t, "next", aps[6].ClientName)

	repo.ListErr = errors.New("down")
	_, err = NewListAppointments(repo).Execute(context.Background())
	assert.True(t, httperr.IsStore(err))
}
