package contact

import (
	"fmt"
	"io"
	"net/http"

	"folio/internal/config"
)

// NewSender builds the transport named in cfg. out receives the log
// transport's copy of each mail and may be nil.
func NewSender(cfg config.ContactConfig, client *http.Client, out io.Writer) (Sender, error) {
	smtpSender := func() Sender {
		return &SMTPSender{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}
	}
	webhook := func() Sender {
		return &WebhookSender{URL: cfg.Webhook.URL, Headers: cfg.Webhook.Headers, Client: client}
	}

	switch cfg.Transport {
	case "", "log":
		return &LogSender{Out: out}, nil
	case "smtp":
		return smtpSender(), nil
	case "webhook":
		return webhook(), nil
	case "multi":
		return MultiSender{smtpSender(), webhook()}, nil
	default:
		return nil, fmt.Errorf("unknown contact transport %q", cfg.Transport)
	}
}

// NewServiceFromConfig wires a Service from the contact section of cfg.
func NewServiceFromConfig(cfg *config.Config, out io.Writer) (*Service, error) {
	sender, err := NewSender(cfg.Contact, &http.Client{Timeout: cfg.GetContactTimeout()}, out)
	if err != nil {
		return nil, err
	}
	from := cfg.Contact.SMTP.From
	if from == "" {
		from = cfg.Contact.SMTP.Username
	}
	return NewService(sender, cfg.Contact.Recipient,
		WithTimeout(cfg.GetContactTimeout()),
		WithFrom(from),
	), nil
}
