package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/logger"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	err    error
	block  chan struct{}
}

func (s *memorySink) Log(_ context.Context, ev Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, logger.Discard(), 10)

	d.Dispatch(Event{Action: ActionAppointmentCreated, BarberName: "Carlão"})
	d.Dispatch(Event{Action: ActionAppointmentConflict, BarberName: "Tigrão"})
	d.Close()

	assert.Len(t, sink.events, 2)
	assert.Equal(t, ActionAppointmentCreated, sink.events[0].Action)
	assert.Equal(t, "Tigrão", sink.events[1].BarberName)
}

func TestDispatcher_SinkErrorsAreContained(t *testing.T) {
	sink := &memorySink{err: errors.New("db down")}
	d := NewDispatcher(sink, logger.Discard(), 1)

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: ActionAppointmentCreated})
		d.Close()
	})
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	sink := &memorySink{block: make(chan struct{})}
	d := NewDispatcher(sink, logger.Discard(), 1)

	// The worker takes the first event and blocks; the second fills the
	// buffer; the rest are dropped without blocking.
	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: ActionAppointmentCreated})
	}
	close(sink.block)
	d.Close()

	assert.LessOrEqual(t, len(sink.events), 2)
	assert.GreaterOrEqual(t, len(sink.events), 1)
}

func TestDispatcher_AfterCloseIsNoop(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, logger.Discard(), 1)
	d.Close()
	d.Close()

	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "late"}) })
	assert.Empty(t, sink.events)
}
