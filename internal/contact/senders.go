package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"

	"folio/internal/logging"
)

// LogSender does not deliver anything; it records the mail in the log and,
// when Out is set, prints it there too.
type LogSender struct {
	Out io.Writer
}

func (s *LogSender) Send(ctx context.Context, m Mail) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	logging.Contact("mail %s would be sent to %s: %q", m.ID, m.To, m.Subject)
	logging.Get(logging.CategoryContact).Debug("mail %s body:\n%s", m.ID, m.Text)
	if s.Out != nil {
		fmt.Fprintf(s.Out, "To: %s\nReply-To: %s\nSubject: %s\n\n%s", m.To, m.ReplyTo, m.Subject, m.Text)
	}
	return nil
}

// WebhookSender POSTs the mail as JSON. Any non-2xx status is a failure.
type WebhookSender struct {
	URL     string
	Headers map[string]string
	Client  *http.Client
}

func (s *WebhookSender) Send(ctx context.Context, m Mail) error {
	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode mail: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", m.ID)
	for k, v := range s.Headers {
		req.Header.Set(k, v)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: webhook: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: webhook returned %s", ErrTransport, resp.Status)
	}
	logging.Get(logging.CategoryContact).Debug("webhook accepted mail %s (%s)", m.ID, resp.Status)
	return nil
}

// MultiSender delivers through every sender concurrently; all must succeed.
type MultiSender []Sender

func (ms MultiSender) Send(ctx context.Context, m Mail) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range ms {
		g.Go(func() error { return s.Send(ctx, m) })
	}
	return g.Wait()
}
