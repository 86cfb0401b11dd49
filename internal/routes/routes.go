package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

// Deps is everything the HTTP surface needs, built once in main.
type Deps struct {
	Appointments *handlers.AppointmentHandler
	Barbers      *handlers.BarberHandler
	Health       *handlers.HealthHandler
	AuditLogs    *handlers.AuditLogsHandler // nil when auditing is off
	Metrics      http.Handler               // nil to skip /metrics

	BookingLimiter *middleware.RateLimiter // nil disables limiting
	CORSOrigins    []string
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.CORSOrigins))

	// ======================================================
	// 🔧 OPERACIONAL
	// ======================================================
	r.GET("/health", d.Health.Health)
	r.GET("/ready", d.Health.Ready)
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/barbers", d.Barbers.List)
		api.GET("/working-hours", d.Barbers.WorkingHours)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		create := []gin.HandlerFunc{d.Appointments.Create}
		if d.BookingLimiter != nil {
			create = append([]gin.HandlerFunc{d.BookingLimiter.Middleware()}, create...)
		}
		api.POST("/appointments", create...)

		api.GET("/appointments", d.Appointments.List)
		api.GET("/appointments/booked-slots", d.Appointments.BookedSlots)
		api.GET("/appointments/:barberName/today", d.Appointments.Today)

		if d.AuditLogs != nil {
			api.GET("/audit-logs", d.AuditLogs.List)
		}
	}
}
