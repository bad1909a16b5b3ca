package contact

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"folio/internal/logging"
)

// SMTPSender delivers over SMTP, upgrading with STARTTLS when the server
// offers it and authenticating when a username is set.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	// TLSConfig overrides the STARTTLS settings.
	TLSConfig *tls.Config
}

func (s *SMTPSender) Send(ctx context.Context, m Mail) error {
	msg, err := m.Bytes()
	if err != nil {
		return err
	}
	from := s.From
	if from == "" {
		from = s.Username
	}
	if from == "" {
		return fmt.Errorf("%w: smtp sender has no from address", ErrTransport)
	}

	addr := net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrTransport, addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: smtp handshake: %v", ErrTransport, err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		cfg := s.TLSConfig
		if cfg == nil {
			cfg = &tls.Config{ServerName: s.Host}
		}
		if err := c.StartTLS(cfg); err != nil {
			return fmt.Errorf("%w: starttls: %v", ErrTransport, err)
		}
	}
	if s.Username != "" {
		if err := c.Auth(smtp.PlainAuth("", s.Username, s.Password, s.Host)); err != nil {
			return fmt.Errorf("%w: smtp auth: %v", ErrTransport, err)
		}
	}

	if err := c.Mail(from); err != nil {
		return fmt.Errorf("%w: MAIL FROM: %v", ErrTransport, err)
	}
	if err := c.Rcpt(m.To); err != nil {
		return fmt.Errorf("%w: RCPT TO: %v", ErrTransport, err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("%w: DATA: %v", ErrTransport, err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("%w: write body: %v", ErrTransport, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: end of data: %v", ErrTransport, err)
	}
	if err := c.Quit(); err != nil {
		logging.ContactWarn("smtp quit after mail %s: %v", m.ID, err)
	}
	logging.Get(logging.CategoryContact).Debug("smtp accepted mail %s via %s", m.ID, addr)
	return nil
}
