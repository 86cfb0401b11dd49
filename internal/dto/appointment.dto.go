package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// AppointmentDTO is the wire shape the booking front end reads.
type AppointmentDTO struct {
	ID              uint      `json:"id"`
	ClientName      string    `json:"clientName"`
	ClientPhone     string    `json:"clientPhone"`
	BarberName      string    `json:"barberName"`
	AppointmentTime time.Time `json:"appointmentTime"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromAppointment renders times in loc so clients see business-local offsets.
func FromAppointment(ap models.Appointment, loc *time.Location) AppointmentDTO {
	return AppointmentDTO{
		ID:              ap.ID,
		ClientName:      ap.ClientName,
		ClientPhone:     ap.PhoneNumber,
		BarberName:      ap.BarberName,
		AppointmentTime: ap.AppointmentTime.In(loc),
		CreatedAt:       ap.CreatedAt.In(loc),
	}
}

func FromAppointments(aps []models.Appointment, loc *time.Location) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap, loc))
	}
	return out
}

type BarberDTO struct {
	Name string `json:"name"`
}

type WorkingCalendarDTO struct {
	Timezone   string `json:"timezone"`
	ClosedDays []int  `json:"closedDays"`
	StartHour  int    `json:"startHour"`
	EndHour    int    `json:"endHour"`
}
