package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
)

type BarberHandler struct {
	barbers *barber.Directory
}

func NewBarberHandler(barbers *barber.Directory) *BarberHandler {
	return &BarberHandler{barbers: barbers}
}

// List hides phone numbers; only names are public.
func (h *BarberHandler) List(c *gin.Context) {
	list := h.barbers.List()

	out := make([]dto.BarberDTO, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BarberDTO{Name: b.Name})
	}

	httpresp.Array(c, out)
}

// WorkingHours publishes the shop calendar so booking forms can grey out
// closed days and hours.
func (h *BarberHandler) WorkingHours(c *gin.Context) {
	cal := h.barbers.Calendar()

	closed := make([]int, 0, len(cal.ClosedDays))
	for _, d := range cal.ClosedDays {
		closed = append(closed, int(d))
	}

	httpresp.OK(c, dto.WorkingCalendarDTO{
		Timezone:   cal.Location.String(),
		ClosedDays: closed,
		StartHour:  cal.StartHour,
		EndHour:    cal.EndHour,
	})
}
