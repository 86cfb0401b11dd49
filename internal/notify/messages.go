package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// NewBookingMessage is sent to the barber right after a booking.
func NewBookingMessage(ap models.Appointment, loc *time.Location) string {
	return fmt.Sprintf(
		"Novo corte marcado!\nCliente: %s\nTelefone: %s\nHorário: %s",
		ap.ClientName,
		ap.PhoneNumber,
		ap.AppointmentTime.In(loc).Format("02/01/2006 15:04"),
	)
}

// DailyScheduleMessage lists aps in the order given; callers pass them
// ascending by time.
func DailyScheduleMessage(barberName string, aps []models.Appointment, loc *time.Location) string {
	if len(aps) == 0 {
		return fmt.Sprintf("Bom dia %s! Você não tem agendamentos para hoje.", barberName)
	}

	lines := make([]string, 0, len(aps))
	for _, ap := range aps {
		lines = append(lines, fmt.Sprintf(
			"%s - %s",
			ap.AppointmentTime.In(loc).Format("15:04"),
			ap.ClientName,
		))
	}

	return fmt.Sprintf(
		"Bom dia %s! Seus agendamentos para hoje:\n\n%s",
		barberName,
		strings.Join(lines, "\n"),
	)
}
