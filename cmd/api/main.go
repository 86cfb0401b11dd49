package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/infra/sms"
	"github.com/BruksfildServices01/barber-booking/internal/lock"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/scheduler"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucNotification "github.com/BruksfildServices01/barber-booking/internal/usecase/notification"
)

func main() {
	log := logger.New(os.Stdout, "barber-booking")

	if err := run(log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// ⚙️ CONFIG
	// ======================================================
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	loc, err := timezone.Load(cfg.Timezone)
	if err != nil {
		return err
	}
	calendar := domain.DefaultCalendar(loc)
	barbers := barber.FromConfig(cfg.Barbers, calendar)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			log.Warn("db close failed", "err", err)
		}
	}()

	var locker lock.Locker = lock.Noop{}
	if cfg.RedisURL != "" {
		client, err := lock.Open(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		locker = lock.NewRedisLocker(client, "barber-booking:")
		log.Info("redis locks enabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rec := metrics.NewCollector(reg)

	var auditor ucAppointment.AuditDispatcher = audit.Discard{}
	if cfg.AuditEnabled {
		dispatcher := audit.NewDispatcher(audit.New(db), log, 256)
		defer dispatcher.Close()
		auditor = dispatcher
	}

	messaging := cfg.SMS.Enabled()
	if !messaging {
		log.Warn("twilio credentials missing or invalid; SMS notifications disabled")
	}
	notifier := notify.NewNotifier(messaging, sms.FromConfig(cfg.SMS), log, rec)

	for _, b := range barbers.List() {
		if !b.HasPhone() {
			log.Warn("barber has no phone configured", "barber", b.Name)
		}
	}

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		barbers,
		notifier,
		locker,
		auditor,
		rec,
		log,
	)
	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo, calendar)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	getBookedHoursUC := ucAppointment.NewGetBookedHours(appointmentRepo, calendar)

	dailySweepUC := ucNotification.NewDailySweep(
		barbers,
		listAppointmentsByDateUC,
		ucNotification.NewCleanupExpired(appointmentRepo, auditor, rec, log),
		notifier,
		locker,
		auditor,
		rec,
		timezone.ClockIn(loc),
		log,
	)

	// ======================================================
	// ⏰ SWEEP DIÁRIO
	// ======================================================
	sched, err := scheduler.New(cfg.SweepCron, loc, dailySweepUC.Run, log)
	if err != nil {
		return err
	}
	sched.Start()

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		gin.Recovery(),
	)

	bookingLimiter := middleware.NewRateLimiter(cfg.BookingRatePerMin, 5*time.Minute)
	defer bookingLimiter.Stop()

	deps := routes.Deps{
		Appointments: handlers.NewAppointmentHandler(
			createAppointmentUC,
			listAppointmentsByDateUC,
			listAppointmentsUC,
			getBookedHoursUC,
			loc,
			nil,
			log,
		),
		Barbers:        handlers.NewBarberHandler(barbers),
		Health:         handlers.NewHealthHandler(dbpkg.ReadyCheck(db), log),
		Metrics:        metrics.Handler(reg),
		BookingLimiter: bookingLimiter,
		CORSOrigins:    cfg.CORSOrigins,
	}
	if cfg.AuditEnabled {
		deps.AuditLogs = handlers.NewAuditLogsHandler(db, loc, log)
	}
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", "addr", cfg.Addr(), "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			_ = sched.Stop(context.Background())
			return fmt.Errorf("listen: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown incomplete", "err", err)
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		log.Warn("sweep still running at shutdown", "err", err)
	}

	return nil
}
