package notify

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/infra/sms"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

// Notifier is the fire-and-forget boundary around an SMS sender.
// Nothing it does is reported back as an error.
type Notifier struct {
	MessagingEnabled bool

	sender  sms.Sender
	logger  *slog.Logger
	metrics metrics.Recorder
}

func NewNotifier(
	enabled bool,
	sender sms.Sender,
	logger *slog.Logger,
	rec metrics.Recorder,
) *Notifier {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Notifier{
		MessagingEnabled: enabled,
		sender:           sender,
		logger:           logger,
		metrics:          rec,
	}
}

// Notify reports whether the message was handed to the provider.
func (n *Notifier) Notify(ctx context.Context, phone string, body string) bool {
	if !n.MessagingEnabled || n.sender == nil {
		n.logger.Warn("sms skipped: messaging not configured")
		n.metrics.SMSResult(metrics.SMSSkipped)
		return false
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		n.logger.Warn("sms skipped: no destination phone")
		n.metrics.SMSResult(metrics.SMSSkipped)
		return false
	}

	if err := n.send(ctx, phone, body); err != nil {
		n.logger.Error("sms send failed",
			"to", phone,
			"provider", n.sender.ProviderID(),
			"err", err,
		)
		n.metrics.SMSResult(metrics.SMSFailed)
		return false
	}

	n.logger.Info("sms sent", "to", phone, "provider", n.sender.ProviderID())
	n.metrics.SMSResult(metrics.SMSSent)
	return true
}

func (n *Notifier) send(ctx context.Context, phone, body string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("sms sender panicked", "panic", r)
			err = errPanicked
		}
	}()
	return n.sender.Send(ctx, phone, body)
}

var errPanicked = errors.New("sms sender panicked")
