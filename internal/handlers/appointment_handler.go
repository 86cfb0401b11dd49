package handlers

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *ucAppointment.CreateAppointment
	listByDate *ucAppointment.ListAppointmentsByDate
	listAll    *ucAppointment.ListAppointments
	booked     *ucAppointment.GetBookedHours

	loc    *time.Location
	clock  timezone.Clock
	logger *slog.Logger
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listAll *ucAppointment.ListAppointments,
	booked *ucAppointment.GetBookedHours,
	loc *time.Location,
	clock timezone.Clock,
	logger *slog.Logger,
) *AppointmentHandler {
	if clock == nil {
		clock = timezone.ClockIn(loc)
	}
	return &AppointmentHandler{
		create:     create,
		listByDate: listByDate,
		listAll:    listAll,
		booked:     booked,
		loc:        loc,
		clock:      clock,
		logger:     logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName      string `json:"clientName"`
	ClientPhone     string `json:"clientPhone"`
	BarberName      string `json:"barberName"`
	AppointmentTime string `json:"appointmentTime"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, messageFor(httperr.CodeInvalidRequest))
		return
	}

	// missing time is reported by the use case with the other fields
	var at time.Time
	if strings.TrimSpace(req.AppointmentTime) != "" {
		parsed, err := parseAppointmentTime(req.AppointmentTime, h.loc)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidRequest, msgInvalidDateTime)
			return
		}
		at = parsed
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		BarberName:      req.BarberName,
		AppointmentTime: at,
	})
	if err != nil {
		writeBookingError(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap, h.loc))
}

// ======================================================
// LIST
// ======================================================

// Today lists the barber's appointments for the current business day.
func (h *AppointmentHandler) Today(c *gin.Context) {
	aps, err := h.listByDate.Execute(c.Request.Context(), c.Param("barberName"), h.clock())
	if err != nil {
		writeReadError(c, h.logger, err)
		return
	}

	httpresp.Array(c, dto.FromAppointments(aps, h.loc))
}

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listAll.Execute(c.Request.Context())
	if err != nil {
		writeReadError(c, h.logger, err)
		return
	}

	httpresp.Array(c, dto.FromAppointments(aps, h.loc))
}

// ======================================================
// BOOKED SLOTS
// ======================================================

func (h *AppointmentHandler) BookedSlots(c *gin.Context) {
	dateStr := c.Query("date")
	barberName := c.Query("barberName")

	if dateStr == "" || barberName == "" {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, msgMissingQuery)
		return
	}

	date, err := parseDate(dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, codeInvalidDate, msgInvalidDate)
		return
	}

	hours, err := h.booked.Execute(c.Request.Context(), barberName, date)
	if err != nil {
		writeReadError(c, h.logger, err)
		return
	}

	httpresp.Array(c, hours)
}
