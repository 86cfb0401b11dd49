package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// BookedHours collects the distinct local hour-of-day values of aps,
// ascending.
func BookedHours(aps []models.Appointment, loc *time.Location) []int {
	seen := make(map[int]struct{}, len(aps))
	hours := make([]int, 0, len(aps))

	for _, ap := range aps {
		h := ap.AppointmentTime.In(loc).Hour()
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		hours = append(hours, h)
	}

	sort.Ints(hours)
	return hours
}
