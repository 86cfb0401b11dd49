package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

// CleanupExpired deletes every appointment strictly before now.
type CleanupExpired struct {
	repo    domain.Repository
	audit   AuditDispatcher
	metrics metrics.Recorder
	logger  *slog.Logger
}

func NewCleanupExpired(
	repo domain.Repository,
	auditor AuditDispatcher,
	rec metrics.Recorder,
	logger *slog.Logger,
) *CleanupExpired {
	if auditor == nil {
		auditor = audit.Discard{}
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &CleanupExpired{
		repo:    repo,
		audit:   auditor,
		metrics: rec,
		logger:  logger,
	}
}

func (uc *CleanupExpired) Execute(ctx context.Context, now time.Time) (int64, error) {
	deleted, err := uc.repo.DeleteAppointmentsBefore(ctx, now)
	if err != nil {
		return 0, httperr.ErrStore("cleanup_failed", err)
	}

	uc.metrics.CleanupDeleted(deleted)
	if deleted > 0 {
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionAppointmentsCleaned,
			Entity:   "appointment",
			Metadata: map[string]any{"deleted": deleted, "before": now},
		})
	}

	uc.logger.Info("expired appointments removed", "deleted", deleted)
	return deleted, nil
}
