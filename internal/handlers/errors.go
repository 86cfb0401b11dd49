package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	codeInvalidDate = "invalid_date"
	codeLoadFailed  = "load_failed"
)

var bookingMessages = map[string]string{
	httperr.CodeInvalidRequest: "Todos os campos são obrigatórios.",
	httperr.CodeBarberNotFound: "Barbeiro não encontrado.",
	httperr.CodeClosedDay:      "A barbearia está fechada aos domingos e segundas-feiras.",
	httperr.CodeOutsideHours:   "Horário fora do expediente (8:00 - 17:00).",
	httperr.CodeSlotTaken:      "Este horário já está reservado para este barbeiro.",

	"availability_check_failed": "Erro ao verificar disponibilidade do horário.",
	"create_failed":             "Erro ao criar agendamento no banco de dados.",
}

const (
	msgInvalidDateTime = "Data ou hora inválida."
	msgInvalidDate     = "Data inválida."
	msgMissingQuery    = "Os parâmetros date e barberName são obrigatórios."
	msgLoadFailed      = "Não foi possível carregar os agendamentos."
	msgBookingFailed   = "Não foi possível concluir o agendamento."
)

// writeBookingError answers every booking failure with 400. Store
// failures are logged with their cause and reported by code only.
func writeBookingError(c *gin.Context, logger *slog.Logger, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.BadRequest(c, code, messageFor(code))
		return
	}

	var se httperr.StoreError
	if errors.As(err, &se) {
		logger.Error("booking store failure", "code", se.Code, "err", httperr.Cause(err))
		httperr.BadRequest(c, se.Code, messageFor(se.Code))
		return
	}

	logger.Error("booking failed", "err", err)
	httperr.BadRequest(c, "booking_failed", msgBookingFailed)
}

// writeReadError is the generic answer for read paths.
func writeReadError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Error("read failed", "path", c.FullPath(), "err", httperr.Cause(err))
	httperr.Internal(c, codeLoadFailed, msgLoadFailed)
}

func messageFor(code string) string {
	if msg, ok := bookingMessages[code]; ok {
		return msg
	}
	return msgBookingFailed
}
