package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db     *gorm.DB
	loc    *time.Location
	logger *slog.Logger
}

func NewAuditLogsHandler(db *gorm.DB, loc *time.Location, logger *slog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, loc: loc, logger: logger}
}

// List pages through the audit trail, newest first. from/to are
// business-local days, both inclusive.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------
	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if barberName := c.Query("barberName"); barberName != "" {
		q = q.Where("barber_name = ?", barberName)
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := parseDate(fromStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, codeInvalidDate, msgInvalidDate)
			return
		}
		q = q.Where("created_at >= ?", from)
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := parseDate(toStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, codeInvalidDate, msgInvalidDate)
			return
		}
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	// --------------------------------------------------
	// Total + página
	// --------------------------------------------------
	var total int64
	if err := q.Count(&total).Error; err != nil {
		h.logger.Error("audit count failed", "err", err)
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {

		h.logger.Error("audit list failed", "err", err)
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.Page(c, logs, int(total))
}
