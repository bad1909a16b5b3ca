package config

import "fmt"

// ContactConfig configures delivery of contact form submissions.
type ContactConfig struct {
	// Transport: log, smtp, webhook or multi (smtp + webhook)
	Transport string `yaml:"transport"`

	// Recipient receives the submissions
	Recipient string `yaml:"recipient"`

	// Timeout bounds a single delivery attempt
	Timeout string `yaml:"timeout"`

	SMTP    SMTPConfig    `yaml:"smtp"`
	Webhook WebhookConfig `yaml:"webhook"`
}

// SMTPConfig configures the SMTP transport.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password,omitempty"`
	From     string `yaml:"from"`
}

// WebhookConfig configures the JSON webhook transport.
type WebhookConfig struct {
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers,omitempty"`
}

// Redacted returns a copy with the SMTP password and every webhook header
// value blanked.
func (c ContactConfig) Redacted() ContactConfig {
	c.SMTP.Password = ""
	if len(c.Webhook.Headers) > 0 {
		headers := make(map[string]string, len(c.Webhook.Headers))
		for k := range c.Webhook.Headers {
			headers[k] = ""
		}
		c.Webhook.Headers = headers
	}
	return c
}

// ValidTransports lists all supported contact transports.
var ValidTransports = []string{"log", "smtp", "webhook", "multi"}

// DefaultContactConfig returns the demo transport, which only logs.
func DefaultContactConfig() ContactConfig {
	return ContactConfig{
		Transport: "log",
		Recipient: "hello@example.com",
		Timeout:   "15s",
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
	}
}

// Validate checks the transport and its required settings.
func (c ContactConfig) Validate() error {
	valid := false
	for _, t := range ValidTransports {
		if c.Transport == t {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid contact transport: %s (valid: %v)", c.Transport, ValidTransports)
	}

	needSMTP := c.Transport == "smtp" || c.Transport == "multi"
	needWebhook := c.Transport == "webhook" || c.Transport == "multi"
	if needSMTP {
		if c.SMTP.Host == "" || c.SMTP.Port <= 0 {
			return fmt.Errorf("smtp transport requires contact.smtp.host and contact.smtp.port")
		}
		if c.Recipient == "" {
			return fmt.Errorf("smtp transport requires contact.recipient")
		}
	}
	if needWebhook && c.Webhook.URL == "" {
		return fmt.Errorf("webhook transport requires contact.webhook.url (or FOLIO_WEBHOOK_URL)")
	}
	return nil
}
