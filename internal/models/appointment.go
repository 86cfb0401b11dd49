package models

import "time"

// Appointment is one booked hour with a barber.
// SlotHour is AppointmentTime floored to the business-local hour; the
// unique index on (barber_name, slot_hour) is what makes double booking
// impossible under concurrent inserts.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	PhoneNumber string `gorm:"size:20;not null" json:"phone_number"`

	BarberName      string    `gorm:"size:100;not null;uniqueIndex:idx_appointments_barber_slot,priority:1" json:"barber_name"`
	AppointmentTime time.Time `gorm:"not null;index" json:"appointment_time"`
	SlotHour        time.Time `gorm:"not null;uniqueIndex:idx_appointments_barber_slot,priority:2" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
