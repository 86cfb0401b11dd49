package sms

import (
	"context"
	"errors"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

type Sender interface {
	Send(ctx context.Context, to string, body string) error
	ProviderID() string
}

// messageCreator is the slice of the Twilio REST client we use.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioSender struct {
	api  messageCreator
	from string
}

func NewTwilioSender(cfg config.SMSConfig) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioSender{
		api:  client.Api,
		from: strings.TrimSpace(cfg.FromNumber),
	}
}

func (s *TwilioSender) ProviderID() string {
	return "sms-twilio"
}

// Send is synchronous; the Twilio client has no context support, so ctx
// is only checked before the request is issued.
func (s *TwilioSender) Send(ctx context.Context, to string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return errors.New("sms: empty destination")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.api.CreateMessage(params)
	return err
}

type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) ProviderID() string {
	return "sms-noop"
}

func (s *NoopSender) Send(_ context.Context, _ string, _ string) error {
	return nil
}

// FromConfig picks Twilio when the credentials are usable.
func FromConfig(cfg config.SMSConfig) Sender {
	if cfg.Enabled() {
		return NewTwilioSender(cfg)
	}
	return NewNoopSender()
}
