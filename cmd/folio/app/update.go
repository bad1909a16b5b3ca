package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/logging"
	"folio/internal/palette"
	"folio/internal/sections"
)

// Update handles a message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		if m.externalFrames {
			m.stepScroll()
		}
		return m, nil

	case scrollTickMsg:
		if m.stepScroll() {
			return m, scrollTick()
		}
		return m, nil

	case ContentMsg:
		if msg.Err != nil {
			logging.ContentWarn("reload rejected: %v", msg.Err)
			m.setStatus("Content reload failed: "+msg.Err.Error(), true)
			return m, nil
		}
		if msg.Portfolio != nil {
			m.portfolio = msg.Portfolio
			m.renderDocument()
			m.setStatus("Content reloaded", false)
		}
		return m, nil

	case submitResultMsg:
		m.form.finish(msg.result)
		m.setStatus(msg.result.Message, !msg.result.Success)
		return m, nil

	case spinner.TickMsg:
		if !m.form.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.form.spinner, cmd = m.form.spinner.Update(msg)
		return m, cmd

	case urlOpenedMsg:
		if msg.err != nil {
			logging.Get(logging.CategoryUI).Warn("open %s: %v", msg.url, msg.err)
			m.setStatus("Could not open "+msg.url, true)
		} else {
			m.setStatus("Opened "+msg.url, false)
		}
		return m, nil

	case tea.MouseMsg:
		if m.mode != modeBrowse || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollBy(-3)
		case tea.MouseButtonWheelDown:
			m.scrollBy(3)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		m.status = ""
		switch m.mode {
		case modePalette:
			return m.updatePalette(msg)
		case modeForm:
			return m.updateForm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.mode == modeForm {
		cmd, _ := m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := max(m.viewport.Height-2, 1)
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Palette):
		m.palette.Open(m.active.Get())
		m.mode = modePalette
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-page)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(page)
	case key.Matches(msg, m.keys.Top):
		return m, m.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		return m, m.scrollTo(m.maxOffset())
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Form):
		return m, m.openForm()
	case msg.Type == tea.KeyEnter && m.active.Get() == sections.Contact.ID():
		return m, m.openForm()
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		if c, ok := palette.ByShortcut(m.palette.Commands(), msg.Runes[0]); ok {
			return m, m.execute(c)
		}
	}
	return m, nil
}

func (m Model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.palKeys.Close):
		m.palette.Close()
		m.mode = modeBrowse
	case key.Matches(msg, m.palKeys.Up):
		m.palette.Move(-1)
	case key.Matches(msg, m.palKeys.Down):
		m.palette.Move(1)
	case key.Matches(msg, m.palKeys.Select):
		c, ok := m.palette.Selected()
		m.palette.Close()
		m.mode = modeBrowse
		if ok {
			return m, m.execute(c)
		}
	case msg.Type == tea.KeyBackspace:
		q := []rune(m.palette.Query())
		if len(q) > 0 {
			m.palette.SetQuery(string(q[:len(q)-1]))
		}
	case msg.Type == tea.KeySpace:
		m.palette.SetQuery(m.palette.Query() + " ")
	case msg.Type == tea.KeyRunes:
		m.palette.SetQuery(m.palette.Query() + string(msg.Runes))
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.form.keys.Submit) {
		if m.contact == nil {
			m.setStatus("Contact form is unavailable", true)
			return m, nil
		}
		return m, m.form.submit(m.ctx, m.contact)
	}
	cmd, closed := m.form.update(msg)
	if closed {
		m.mode = modeBrowse
	}
	return m, cmd
}

// statusLine returns the footer text for the current mode.
func (m Model) statusLine() string {
	if m.status != "" {
		if m.statusErr {
			return m.styles.Error.Render(m.status)
		}
		return m.styles.Muted.Render(m.status)
	}
	switch m.mode {
	case modePalette:
		return m.help.View(m.palKeys)
	case modeForm:
		return m.help.View(m.form.keys)
	default:
		return m.help.View(m.keys)
	}
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:max(n-1, 0)])) + "…"
}
