package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/cmd/folio/ui"
	"folio/internal/contact"
)

// submitResultMsg carries the outcome of an asynchronous submission.
type submitResultMsg struct {
	result contact.Result
}

// contactForm is the overlay with the name, email and message inputs.
type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	spinner spinner.Model
	keys    formKeys

	focus   int
	sending bool
	errors  contact.FieldErrors
	result  *contact.Result
}

func newContactForm(styles ui.Styles) contactForm {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 120

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254

	msg := textarea.New()
	msg.Placeholder = "What would you like to talk about?"
	msg.ShowLineNumbers = false
	msg.CharLimit = 5000
	msg.SetHeight(ui.FormMessageHeight)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	f := contactForm{name: name, email: email, message: msg, spinner: sp, keys: defaultFormKeys()}
	f.applyStyles(styles)
	return f
}

func (f *contactForm) applyStyles(styles ui.Styles) {
	f.spinner.Style = styles.ScrollTop
	f.name.PromptStyle = styles.Label
	f.email.PromptStyle = styles.Label
}

func (f *contactForm) setWidth(w int) {
	f.name.Width = w - 4
	f.email.Width = w - 4
	f.message.SetWidth(w - 2)
}

// open focuses the first field.
func (f *contactForm) open() tea.Cmd {
	f.focus = 0
	return f.applyFocus()
}

func (f *contactForm) close() {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

func (f *contactForm) applyFocus() tea.Cmd {
	f.close()
	switch contact.Fields[f.focus] {
	case contact.FieldName:
		return f.name.Focus()
	case contact.FieldEmail:
		return f.email.Focus()
	default:
		return f.message.Focus()
	}
}

func (f *contactForm) cycle(delta int) tea.Cmd {
	n := len(contact.Fields)
	f.focus = ((f.focus+delta)%n + n) % n
	return f.applyFocus()
}

func (f *contactForm) payload() contact.Payload {
	return contact.Payload{
		Name:    f.name.Value(),
		Email:   f.email.Value(),
		Message: f.message.Value(),
	}
}

// submit starts a delivery in the background.
func (f *contactForm) submit(ctx context.Context, svc *contact.Service) tea.Cmd {
	if f.sending || svc == nil {
		return nil
	}
	f.sending = true
	f.result = nil
	p := f.payload()
	return tea.Batch(f.spinner.Tick, func() tea.Msg {
		return submitResultMsg{result: svc.Submit(ctx, p)}
	})
}

func (f *contactForm) finish(res contact.Result) {
	f.sending = false
	f.result = &res
	f.errors = res.Errors
	if res.Success {
		f.name.Reset()
		f.email.Reset()
		f.message.Reset()
		f.focus = 0
		f.applyFocus()
	}
}

// update routes a key to the form. It reports whether the form should close.
func (f *contactForm) update(msg tea.Msg) (tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.keys.Close):
			f.close()
			return nil, true
		case key.Matches(km, f.keys.Next):
			return f.cycle(1), false
		case key.Matches(km, f.keys.Prev):
			return f.cycle(-1), false
		case km.String() == "enter" && contact.Fields[f.focus] != contact.FieldMessage:
			return f.cycle(1), false
		}
	}

	field := contact.Fields[f.focus]
	before := f.value(field)

	var cmd tea.Cmd
	switch field {
	case contact.FieldName:
		f.name, cmd = f.name.Update(msg)
	case contact.FieldEmail:
		f.email, cmd = f.email.Update(msg)
	default:
		f.message, cmd = f.message.Update(msg)
	}

	if f.value(field) != before {
		delete(f.errors, field)
		f.result = nil
	}
	return cmd, false
}

func (f *contactForm) value(field contact.Field) string {
	switch field {
	case contact.FieldName:
		return f.name.Value()
	case contact.FieldEmail:
		return f.email.Value()
	default:
		return f.message.Value()
	}
}

func (f contactForm) view(styles ui.Styles, width int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Get in touch"))
	b.WriteString("\n")

	field := func(label string, input string, fld contact.Field) {
		b.WriteString(styles.Label.Render(label))
		b.WriteString("\n")
		b.WriteString(input)
		b.WriteString("\n")
		if msg := f.errors.First(fld); msg != "" {
			b.WriteString(styles.FieldError.Render(msg))
		}
		b.WriteString("\n")
	}
	field("Name", f.name.View(), contact.FieldName)
	field("Email", f.email.View(), contact.FieldEmail)
	field("Message", f.message.View(), contact.FieldMessage)

	switch {
	case f.sending:
		b.WriteString(f.spinner.View() + " Sending…")
	case f.result != nil && f.result.Success:
		b.WriteString(styles.Success.Render(f.result.Message))
	case f.result != nil:
		b.WriteString(styles.Error.Render(f.result.Message))
	}
	b.WriteString("\n")
	return styles.Overlay.Width(max(width-2, 1)).Render(b.String())
}
