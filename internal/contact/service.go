package contact

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"folio/internal/logging"
)

// ErrTransport marks a delivery failure.
var ErrTransport = errors.New("contact: transport failure")

// Sender delivers a composed mail. One call is one attempt.
type Sender interface {
	Send(ctx context.Context, m Mail) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, m Mail) error

func (f SenderFunc) Send(ctx context.Context, m Mail) error { return f(ctx, m) }

// DefaultTimeout bounds one delivery attempt.
const DefaultTimeout = 15 * time.Second

// Service validates submissions and forwards valid ones to a Sender.
type Service struct {
	sender    Sender
	recipient string
	from      string
	timeout   time.Duration
	newID     func() string
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the per-attempt deadline.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithFrom sets the envelope sender.
func WithFrom(from string) Option {
	return func(s *Service) { s.from = from }
}

// WithIDGenerator replaces the UUID submission ids.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService creates a service delivering to recipient. A nil sender logs.
func NewService(sender Sender, recipient string, opts ...Option) *Service {
	if sender == nil {
		sender = &LogSender{}
	}
	s := &Service{
		sender:    sender,
		recipient: recipient,
		timeout:   DefaultTimeout,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates p and, when valid, makes exactly one delivery attempt.
// Validation problems come back per field; any delivery failure, including a
// panicking sender, is reported with one generic message.
func (s *Service) Submit(ctx context.Context, p Payload) (res Result) {
	id := s.newID()
	log := logging.WithRequestID(logging.CategoryContact, id)

	if errs := Validate(p); errs != nil {
		log.WithField("fields", len(errs)).Info("submission rejected: %v", errs)
		return Result{Success: false, Message: MsgValidationFailed, Errors: errs, ID: id}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("sender panicked: %v", r)
			res = Result{Success: false, Message: MsgSendFailed, ID: id}
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	m := ComposeMail(id, p, s.from, s.recipient)
	timer := logging.StartTimer(logging.CategoryContact, "contact delivery "+id)
	err := s.sender.Send(ctx, m)
	timer.StopWithThreshold(s.timeout / 2)
	if err != nil {
		log.Error("delivery failed: %v", err)
		return Result{Success: false, Message: MsgSendFailed, ID: id}
	}

	log.Info("message from %s delivered to %s", m.ReplyTo, m.To)
	return Result{Success: true, Message: MsgSent, ID: id}
}
