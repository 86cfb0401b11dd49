package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment/appointmenttest"
	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string, string) bool { return true }

func setupRouter(t *testing.T, limiter *middleware.RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	cal := domain.DefaultCalendar(loc)
	dir := barber.NewDirectory(cal, barber.Barber{Name: "Carlão"}, barber.Barber{Name: "Tigrão"})
	repo := appointmenttest.New()
	log := logger.Discard()

	reg := prometheus.NewRegistry()
	rec := metrics.NewCollector(reg)

	r := gin.New()
	RegisterRoutes(r, Deps{
		Appointments: handlers.NewAppointmentHandler(
			ucAppointment.NewCreateAppointment(repo, dir, nopNotifier{}, nil, nil, rec, log),
			ucAppointment.NewListAppointmentsByDate(repo, cal),
			ucAppointment.NewListAppointments(repo),
			ucAppointment.NewGetBookedHours(repo, cal),
			loc, nil, log,
		),
		Barbers:        handlers.NewBarberHandler(dir),
		Health:         handlers.NewHealthHandler(nil, log),
		Metrics:        metrics.Handler(reg),
		BookingLimiter: limiter,
		CORSOrigins:    []string{"http://localhost:5173"},
	})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRegisterRoutes_Surface(t *testing.T) {
	r := setupRouter(t, nil)

	for _, path := range []string{
		"/health",
		"/ready",
		"/api/barbers",
		"/api/working-hours",
		"/api/appointments",
		"/api/appointments/booked-slots?date=2024-06-04&barberName=Tigr%C3%A3o",
		"/api/appointments/Tigr%C3%A3o/today",
	} {
		assert.Equal(t, http.StatusOK, get(r, path).Code, path)
	}

	assert.Equal(t, http.StatusNotFound, get(r, "/api/audit-logs").Code)
}

func TestRegisterRoutes_MetricsAfterBooking(t *testing.T) {
	r := setupRouter(t, nil)

	body := `{"clientName":"A","clientPhone":"1","barberName":"Carlão","appointmentTime":"2024-06-02T10:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	m := get(r, "/metrics")
	require.Equal(t, http.StatusOK, m.Code)
	assert.Contains(t, m.Body.String(), `barber_bookings_rejected_total{reason="closed_day"} 1`)
}

func TestRegisterRoutes_BookingIsRateLimited(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, time.Hour)
	defer limiter.Stop()
	r := setupRouter(t, limiter)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusBadRequest, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	// reads are not limited
	assert.Equal(t, http.StatusOK, get(r, "/api/barbers").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/barbers").Code)
}
