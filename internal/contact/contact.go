// Package contact validates contact form submissions and hands them to a
// pluggable mail transport.
package contact

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// User-facing messages.
const (
	MsgNameTooShort    = "Name must be at least 2 characters"
	MsgInvalidEmail    = "Please enter a valid email address"
	MsgMessageTooShort = "Message must be at least 10 characters"

	MsgValidationFailed = "Validation failed"
	MsgSent             = "Message sent successfully!"
	MsgSendFailed       = "Failed to send message. Please try again later."
)

const (
	minNameLen    = 2
	minMessageLen = 10
)

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// Payload is one form submission.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// FieldErrors maps each invalid field to its messages.
type FieldErrors map[Field][]string

func (e FieldErrors) add(f Field, msg string) { e[f] = append(e[f], msg) }

// First returns the first message for f, or "".
func (e FieldErrors) First(f Field) string {
	if msgs := e[f]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Result is what the form shows after a submission.
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  FieldErrors `json:"errors,omitempty"`
	ID      string      `json:"id,omitempty"`
}

// Validate checks every field and returns nil when the payload is valid.
// Lengths are counted in characters, surrounding space included.
func Validate(p Payload) FieldErrors {
	errs := FieldErrors{}
	if utf8.RuneCountInString(p.Name) < minNameLen {
		errs.add(FieldName, MsgNameTooShort)
	}
	if !ValidEmail(p.Email) {
		errs.add(FieldEmail, MsgInvalidEmail)
	}
	if utf8.RuneCountInString(p.Message) < minMessageLen {
		errs.add(FieldMessage, MsgMessageTooShort)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidEmail accepts a bare address (no display name) whose domain has a dot,
// no label starting or ending with a hyphen, and a top-level label of at
// least two letters.
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 {
		return false
	}
	labels := strings.Split(s[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || l[0] == '-' || l[len(l)-1] == '-' {
			return false
		}
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
