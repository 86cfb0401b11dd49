package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Appointment{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM appointments")
	})
	db.Exec("DELETE FROM appointments")
	return db
}

func mustCreate(t *testing.T, r *AppointmentGormRepository, barber string, at time.Time) models.Appointment {
	t.Helper()
	ap := models.Appointment{
		ClientName:      "Cliente",
		PhoneNumber:     "11999990000",
		BarberName:      barber,
		AppointmentTime: at,
		SlotHour:        at.Truncate(time.Hour),
	}
	require.NoError(t, r.CreateAppointment(context.Background(), &ap))
	require.NotZero(t, ap.ID)
	return ap
}

func TestAppointmentGormRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	r := NewAppointmentGormRepository(db)
	ctx := context.Background()

	day := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	mustCreate(t, r, "Carlão", day.Add(14*time.Hour))
	mustCreate(t, r, "Carlão", day.Add(10*time.Hour))
	mustCreate(t, r, "Tigrão", day.Add(10*time.Hour))
	mustCreate(t, r, "Carlão", day.Add(24*time.Hour+9*time.Hour))

	t.Run("range check is half-open", func(t *testing.T) {
		ok, err := r.HasAppointmentInRange(ctx, "Carlão", day.Add(10*time.Hour), day.Add(11*time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = r.HasAppointmentInRange(ctx, "Carlão", day.Add(9*time.Hour), day.Add(10*time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unique slot", func(t *testing.T) {
		dup := models.Appointment{
			ClientName:      "Outro",
			PhoneNumber:     "1",
			BarberName:      "Carlão",
			AppointmentTime: day.Add(10*time.Hour + 30*time.Minute),
			SlotHour:        day.Add(10 * time.Hour),
		}
		assert.ErrorIs(t, r.CreateAppointment(ctx, &dup), domain.ErrSlotConflict)
	})

	t.Run("day listing is ordered and scoped", func(t *testing.T) {
		end := day.Add(24*time.Hour - time.Millisecond)
		aps, err := r.ListAppointmentsForPeriod(ctx, "Carlão", day, end)
		require.NoError(t, err)
		require.Len(t, aps, 2)
		assert.True(t, aps[0].AppointmentTime.Before(aps[1].AppointmentTime))
	})

	t.Run("list all ascending", func(t *testing.T) {
		aps, err := r.ListAppointments(ctx)
		require.NoError(t, err)
		require.Len(t, aps, 4)
		for i := 1; i < len(aps); i++ {
			assert.False(t, aps[i].AppointmentTime.Before(aps[i-1].AppointmentTime))
		}
	})

	t.Run("delete before is strict", func(t *testing.T) {
		n, err := r.DeleteAppointmentsBefore(ctx, day.Add(14*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		aps, err := r.ListAppointments(ctx)
		require.NoError(t, err)
		assert.Len(t, aps, 2)
	})
}
