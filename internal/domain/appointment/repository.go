package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Repository is the appointment store. Ranges document their own bounds;
// every list is ascending by appointment time.
type Repository interface {
	// -------- Conflict --------
	// HasAppointmentInRange matches start <= appointment_time < end.
	HasAppointmentInRange(
		ctx context.Context,
		barberName string,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Create --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Queries --------
	// ListAppointmentsForPeriod matches start <= appointment_time <= end.
	ListAppointmentsForPeriod(
		ctx context.Context,
		barberName string,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	// -------- Cleanup --------
	// DeleteAppointmentsBefore removes rows with appointment_time < before.
	DeleteAppointmentsBefore(
		ctx context.Context,
		before time.Time,
	) (int64, error)
}
