package barber

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

type Barber struct {
	Name  string
	Phone string
}

// HasPhone reports whether notifications can be addressed to b.
func (b Barber) HasPhone() bool {
	return strings.TrimSpace(b.Phone) != ""
}

// Directory is the static barber registry plus the shop calendar.
// It is built once at startup and never mutated.
type Directory struct {
	barbers  []Barber
	calendar appointment.WorkingCalendar
}

func NewDirectory(calendar appointment.WorkingCalendar, barbers ...Barber) *Directory {
	return &Directory{
		barbers:  append([]Barber(nil), barbers...),
		calendar: calendar,
	}
}

func FromConfig(cfg []config.BarberConfig, calendar appointment.WorkingCalendar) *Directory {
	barbers := make([]Barber, 0, len(cfg))
	for _, b := range cfg {
		barbers = append(barbers, Barber{Name: b.Name, Phone: b.Phone})
	}
	return NewDirectory(calendar, barbers...)
}

// List returns the barbers in registration order.
func (d *Directory) List() []Barber {
	return append([]Barber(nil), d.barbers...)
}

// FindByName trims name and compares case-insensitively.
func (d *Directory) FindByName(name string) (Barber, bool) {
	name = strings.TrimSpace(name)
	for _, b := range d.barbers {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Barber{}, false
}

func (d *Directory) Calendar() appointment.WorkingCalendar {
	return d.calendar
}

func (d *Directory) Location() *time.Location {
	return d.calendar.Location
}

func (d *Directory) IsWorkingDay(t time.Time) bool {
	return d.calendar.IsWorkingDay(t)
}

func (d *Directory) IsWorkingHours(t time.Time) bool {
	return d.calendar.IsWorkingHours(t)
}
