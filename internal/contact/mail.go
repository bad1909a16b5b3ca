package contact

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Mail is a composed contact message.
type Mail struct {
	ID      string    `json:"id"`
	From    string    `json:"from,omitempty"`
	To      string    `json:"to"`
	ReplyTo string    `json:"reply_to"`
	Subject string    `json:"subject"`
	Text    string    `json:"text"`
	HTML    string    `json:"html"`
	Date    time.Time `json:"date"`
}

// ComposeMail builds the message for a validated payload.
func ComposeMail(id string, p Payload, from, to string) Mail {
	name := strings.TrimSpace(p.Name)
	email := strings.TrimSpace(p.Email)
	body := strings.ReplaceAll(p.Message, "\r\n", "\n")

	text := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", name, email, body)

	htmlBody := fmt.Sprintf(
		"<h2>New Contact Form Submission</h2>\n"+
			"<p><strong>Name:</strong> %s</p>\n"+
			"<p><strong>Email:</strong> %s</p>\n"+
			"<h3>Message:</h3>\n"+
			"<p>%s</p>\n",
		html.EscapeString(name),
		html.EscapeString(email),
		strings.ReplaceAll(html.EscapeString(body), "\n", "<br>"),
	)

	return Mail{
		ID:      id,
		From:    from,
		To:      to,
		ReplyTo: email,
		Subject: "Portfolio Contact: Message from " + name,
		Text:    text,
		HTML:    htmlBody,
		Date:    time.Now(),
	}
}

// Bytes renders m as a multipart/alternative RFC 5322 message.
func (m Mail) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := []struct{ k, v string }{
		{"From", m.From},
		{"To", m.To},
		{"Reply-To", m.ReplyTo},
		{"Subject", mime.QEncoding.Encode("utf-8", m.Subject)},
		{"Date", m.Date.Format(time.RFC1123Z)},
		{"Message-ID", "<" + m.ID + "@folio>"},
		{"MIME-Version", "1.0"},
		{"Content-Type", "multipart/alternative; boundary=" + mw.Boundary()},
	}
	var head bytes.Buffer
	for _, h := range hdr {
		if h.v == "" {
			continue
		}
		fmt.Fprintf(&head, "%s: %s\r\n", h.k, h.v)
	}
	head.WriteString("\r\n")

	for _, part := range []struct{ ctype, body string }{
		{"text/plain; charset=utf-8", m.Text},
		{"text/html; charset=utf-8", m.HTML},
	} {
		w, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {part.ctype}})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s part: %w", part.ctype, err)
		}
		if _, err := w.Write([]byte(strings.ReplaceAll(part.body, "\n", "\r\n"))); err != nil {
			return nil, fmt.Errorf("failed to write %s part: %w", part.ctype, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}
	return append(head.Bytes(), buf.Bytes()...), nil
}
