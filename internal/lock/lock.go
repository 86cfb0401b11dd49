package lock

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Release gives a lease back. Releasing an expired lease is not an error.
type Release func(ctx context.Context) error

// Locker hands out short exclusive leases on string keys. ok is false
// when someone else holds the key.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release Release, ok bool, err error)
}

// SlotKey names the lease guarding one barber hour.
func SlotKey(barberName string, hourStart time.Time) string {
	return fmt.Sprintf("slot:%s:%d", strings.ToLower(barberName), hourStart.Unix())
}

// SweepKey names the lease for one day's sweep; day is any instant in it.
func SweepKey(day time.Time) string {
	return "sweep:" + day.Format("2006-01-02")
}

// Noop always grants the lease. Used when Redis is not configured; the
// database uniqueness constraint still guards bookings.
type Noop struct{}

func (Noop) Acquire(context.Context, string, time.Duration) (Release, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}

var _ Locker = Noop{}
