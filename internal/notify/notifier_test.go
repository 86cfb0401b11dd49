package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type recordingSender struct {
	to    []string
	body  []string
	err   error
	panic bool
}

func (s *recordingSender) ProviderID() string { return "sms-test" }

func (s *recordingSender) Send(_ context.Context, to, body string) error {
	if s.panic {
		panic("boom")
	}
	s.to = append(s.to, to)
	s.body = append(s.body, body)
	return s.err
}

func TestNotify_Sends(t *testing.T) {
	s := &recordingSender{}
	n := NewNotifier(true, s, logger.Discard(), nil)

	assert.True(t, n.Notify(context.Background(), " +5511 ", "olá"))
	assert.Equal(t, []string{"+5511"}, s.to)
	assert.Equal(t, []string{"olá"}, s.body)
}

func TestNotify_DisabledIsSilent(t *testing.T) {
	s := &recordingSender{}
	n := NewNotifier(false, s, logger.Discard(), nil)

	assert.False(t, n.Notify(context.Background(), "+5511", "olá"))
	assert.Empty(t, s.to)
}

func TestNotify_MissingPhoneSkips(t *testing.T) {
	s := &recordingSender{}
	n := NewNotifier(true, s, logger.Discard(), nil)

	assert.False(t, n.Notify(context.Background(), "  ", "olá"))
	assert.Empty(t, s.to)
}

func TestNotify_SwallowsFailures(t *testing.T) {
	c := metrics.NewCollector(prometheus.NewRegistry())

	failing := NewNotifier(true, &recordingSender{err: errors.New("unreachable")}, logger.Discard(), c)
	assert.False(t, failing.Notify(context.Background(), "+55", "x"))

	panicking := NewNotifier(true, &recordingSender{panic: true}, logger.Discard(), c)
	assert.NotPanics(t, func() {
		assert.False(t, panicking.Notify(context.Background(), "+55", "x"))
	})
}

func TestDailyScheduleMessage(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	aps := []models.Appointment{
		{ClientName: "João", AppointmentTime: time.Date(2024, 6, 4, 9, 0, 0, 0, loc)},
		{ClientName: "Pedro", AppointmentTime: time.Date(2024, 6, 4, 17, 30, 0, 0, time.UTC)},
	}

	msg := DailyScheduleMessage("Carlão", aps, loc)
	assert.Equal(t, "Bom dia Carlão! Seus agendamentos para hoje:\n\n09:00 - João\n14:30 - Pedro", msg)

	empty := DailyScheduleMessage("Tigrão", nil, loc)
	assert.Equal(t, "Bom dia Tigrão! Você não tem agendamentos para hoje.", empty)
}

func TestNewBookingMessage(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	msg := NewBookingMessage(models.Appointment{
		ClientName:      "João",
		PhoneNumber:     "11 98888-7777",
		AppointmentTime: time.Date(2024, 6, 4, 13, 0, 0, 0, time.UTC),
	}, loc)

	assert.Equal(t, "Novo corte marcado!\nCliente: João\nTelefone: 11 98888-7777\nHorário: 04/06/2024 10:00", msg)
}
