package contact

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/config"
)

func TestWebhookSender(t *testing.T) {
	var got Mail
	var gotHeader, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotHeader = r.Header.Get("X-Request-ID")
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := &WebhookSender{URL: srv.URL, Headers: map[string]string{"Authorization": "Bearer t"}, Client: srv.Client()}
	m := ComposeMail("req-9", validPayload(), "", "me@example.com")
	require.NoError(t, s.Send(context.Background(), m))

	assert.Equal(t, "req-9", gotHeader)
	assert.Equal(t, "Bearer t", gotAuth)
	assert.Equal(t, m.Subject, got.Subject)
	assert.Equal(t, m.HTML, got.HTML)
}

func TestWebhookSenderRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := &WebhookSender{URL: srv.URL, Client: srv.Client()}
	err := s.Send(context.Background(), ComposeMail("id", validPayload(), "", "me@example.com"))
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "502")
}

func TestMultiSenderNeedsEverySender(t *testing.T) {
	var mu sync.Mutex
	var delivered []string
	ok := func(name string) Sender {
		return SenderFunc(func(context.Context, Mail) error {
			mu.Lock()
			delivered = append(delivered, name)
			mu.Unlock()
			return nil
		})
	}
	fail := SenderFunc(func(context.Context, Mail) error { return fmt.Errorf("%w: down", ErrTransport) })

	m := ComposeMail("id", validPayload(), "", "me@example.com")
	require.NoError(t, MultiSender{ok("a"), ok("b")}.Send(context.Background(), m))
	assert.ElementsMatch(t, []string{"a", "b"}, delivered)

	assert.ErrorIs(t, MultiSender{ok("c"), fail}.Send(context.Background(), m), ErrTransport)
}

// fakeSMTP accepts a single session and records the envelope and data.
type fakeSMTP struct {
	ln   net.Listener
	done chan struct{}

	mu   sync.Mutex
	from string
	rcpt string
	data string
}

func startFakeSMTP(t *testing.T) *fakeSMTP {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := &fakeSMTP{ln: ln, done: make(chan struct{})}
	go s.serve()
	t.Cleanup(func() {
		ln.Close()
		<-s.done
	})
	return s
}

func (s *fakeSMTP) port() int { return s.ln.Addr().(*net.TCPAddr).Port }

func between(line, open, close string) string {
	i := strings.Index(line, open)
	j := strings.LastIndex(line, close)
	if i < 0 || j <= i {
		return ""
	}
	return line[i+len(open) : j]
}

func (s *fakeSMTP) serve() {
	defer close(s.done)
	conn, err := s.ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	r := bufio.NewReader(conn)
	reply := func(line string) { fmt.Fprintf(conn, "%s\r\n", line) }
	reply("220 localhost ESMTP ready")

	var inData bool
	var data strings.Builder
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		if inData {
			if line == ".\r\n" {
				inData = false
				s.mu.Lock()
				s.data = data.String()
				s.mu.Unlock()
				reply("250 queued")
				continue
			}
			data.WriteString(line)
			continue
		}

		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			reply("250-localhost")
			reply("250 8BITMIME")
		case strings.HasPrefix(cmd, "MAIL FROM:"):
			s.mu.Lock()
			s.from = between(line, "<", ">")
			s.mu.Unlock()
			reply("250 ok")
		case strings.HasPrefix(cmd, "RCPT TO:"):
			s.mu.Lock()
			s.rcpt = between(line, "<", ">")
			s.mu.Unlock()
			reply("250 ok")
		case cmd == "DATA":
			inData = true
			reply("354 end with <CRLF>.<CRLF>")
		case cmd == "QUIT":
			reply("221 bye")
			return
		default:
			reply("502 not implemented")
		}
	}
}

func TestSMTPSenderDelivers(t *testing.T) {
	srv := startFakeSMTP(t)
	s := &SMTPSender{Host: "127.0.0.1", Port: srv.port(), From: "site@example.com"}

	m := ComposeMail("smtp-1", validPayload(), "site@example.com", "me@example.com")
	require.NoError(t, s.Send(context.Background(), m))
	<-srv.done

	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.Equal(t, "site@example.com", srv.from)
	assert.Equal(t, "me@example.com", srv.rcpt)
	assert.Contains(t, srv.data, "Message-ID: <smtp-1@folio>")
	assert.Contains(t, srv.data, "Hello there, nice portfolio!")
}

func TestSMTPSenderConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	s := &SMTPSender{Host: "127.0.0.1", Port: port, From: "site@example.com"}
	err = s.Send(context.Background(), ComposeMail("id", validPayload(), "", "me@example.com"))
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
}

func TestSMTPSenderNeedsFrom(t *testing.T) {
	err := (&SMTPSender{Host: "127.0.0.1", Port: 25}).Send(context.Background(), Mail{To: "me@example.com"})
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestNewSender(t *testing.T) {
	cfg := config.DefaultContactConfig()

	s, err := NewSender(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, s)

	cfg.Transport = "webhook"
	cfg.Webhook.URL = "http://127.0.0.1/hook"
	s, err = NewSender(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &WebhookSender{}, s)

	cfg.Transport = "multi"
	s, err = NewSender(cfg, nil, nil)
	require.NoError(t, err)
	require.IsType(t, MultiSender{}, s)
	assert.Len(t, s.(MultiSender), 2)

	cfg.Transport = "carrier-pigeon"
	_, err = NewSender(cfg, nil, nil)
	assert.Error(t, err)
}

func TestNewServiceFromConfigRoundTrip(t *testing.T) {
	var got Mail
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.Contact.Transport = "webhook"
	cfg.Contact.Webhook.URL = srv.URL
	cfg.Contact.Recipient = "owner@example.com"

	svc, err := NewServiceFromConfig(cfg, nil)
	require.NoError(t, err)

	res := svc.Submit(context.Background(), validPayload())
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "owner@example.com", got.To)
	assert.Equal(t, res.ID, got.ID)
}
