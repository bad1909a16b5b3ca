// Package palette implements the quick-jump command palette.
package palette

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"folio/internal/logging"
	"folio/internal/sections"
)

// Action is what a command does when selected.
type Action int

const (
	// ActionSection scrolls to a section.
	ActionSection Action = iota
	// ActionLink opens an external URL.
	ActionLink
	// ActionTheme toggles light and dark.
	ActionTheme
)

// Command is one palette entry.
type Command struct {
	ID       string
	Name     string
	Shortcut rune
	Action   Action
	Section  sections.Kind
	Href     string
}

// DefaultCommands lists every section followed by the resume link and the
// theme toggle.
func DefaultCommands(resumeURL string) []Command {
	if resumeURL == "" {
		resumeURL = "/resume.pdf"
	}
	cmds := make([]Command, 0, len(sections.All())+2)
	for _, k := range sections.All() {
		info := k.Info()
		cmds = append(cmds, Command{
			ID:       info.ID,
			Name:     info.Title,
			Shortcut: info.Shortcut,
			Action:   ActionSection,
			Section:  k,
		})
	}
	return append(cmds,
		Command{ID: "resume", Name: "Resume", Shortcut: 'r', Action: ActionLink, Href: resumeURL},
		Command{ID: "theme", Name: "Toggle Theme", Shortcut: 't', Action: ActionTheme},
	)
}

// Filter keeps the commands whose name contains query, ignoring case. When
// none do, the commands are ranked by fuzzy match instead so a typo still
// finds something.
func Filter(cmds []Command, query string) []Command {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Command(nil), cmds...)
	}

	var out []Command
	for _, c := range cmds {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	if len(out) > 0 {
		return out
	}

	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	for _, m := range fuzzy.Find(q, names) {
		out = append(out, cmds[m.Index])
	}
	return out
}

// ByShortcut finds the command bound to r, ignoring case.
func ByShortcut(cmds []Command, r rune) (Command, bool) {
	r = toLower(r)
	for _, c := range cmds {
		if c.Shortcut == r {
			return c, true
		}
	}
	return Command{}, false
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Palette is the open/closed state, query and selection of the overlay.
type Palette struct {
	commands []Command
	results  []Command
	query    string
	cursor   int
	open     bool
}

// New creates a closed palette over cmds.
func New(cmds []Command) *Palette {
	return &Palette{commands: cmds, results: append([]Command(nil), cmds...)}
}

// Open clears the query and puts the cursor on the command for the active
// section.
func (p *Palette) Open(active string) {
	p.open = true
	p.query = ""
	p.results = append(p.results[:0], p.commands...)
	p.cursor = 0
	for i, c := range p.results {
		if c.ID == active {
			p.cursor = i
			break
		}
	}
	logging.PaletteDebug("palette opened (active=%s)", active)
}

// Close hides the palette.
func (p *Palette) Close() {
	p.open = false
}

// Toggle opens or closes the palette.
func (p *Palette) Toggle(active string) {
	if p.open {
		p.Close()
		return
	}
	p.Open(active)
}

// IsOpen reports whether the overlay is shown.
func (p *Palette) IsOpen() bool { return p.open }

// Query returns the current filter text.
func (p *Palette) Query() string { return p.query }

// SetQuery refilters and moves the cursor to the first result.
func (p *Palette) SetQuery(q string) {
	p.query = q
	p.results = Filter(p.commands, q)
	p.cursor = 0
	logging.PaletteDebug("palette query %q: %d results", q, len(p.results))
}

// Move shifts the cursor by delta, wrapping around the results.
func (p *Palette) Move(delta int) {
	n := len(p.results)
	if n == 0 {
		return
	}
	p.cursor = ((p.cursor+delta)%n + n) % n
}

// Cursor returns the selected index into Results.
func (p *Palette) Cursor() int { return p.cursor }

// Results returns the filtered commands.
func (p *Palette) Results() []Command { return p.results }

// Commands returns every command.
func (p *Palette) Commands() []Command { return p.commands }

// Selected returns the command under the cursor.
func (p *Palette) Selected() (Command, bool) {
	if p.cursor < 0 || p.cursor >= len(p.results) {
		return Command{}, false
	}
	return p.results[p.cursor], true
}
