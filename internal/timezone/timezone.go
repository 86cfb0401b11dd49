package timezone

import (
	"fmt"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

// Load resolves an IANA zone name. Unlike Location it never falls back.
func Load(tz string) (*time.Location, error) {
	if tz == "" {
		return nil, fmt.Errorf("timezone: empty name")
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	return loc, nil
}

func Location(tz string) *time.Location {
	if loc, err := Load(tz); err == nil {
		return loc
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// Clock returns the current instant. Use cases take one so tests can pin "now".
type Clock func() time.Time

func ClockIn(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}
