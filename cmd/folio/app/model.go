// Package app is the interactive portfolio: a bubbletea model that scrolls
// the rendered sections over the particle backdrop, tracks the active
// section and hosts the command palette and contact form overlays.
package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"

	"folio/cmd/folio/ui"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/logging"
	"folio/internal/palette"
	"folio/internal/particles"
	"folio/internal/sections"
)

// FrameMsg is sent by the animation loop after each backdrop frame.
type FrameMsg struct{}

// ContentMsg delivers reloaded portfolio content.
type ContentMsg struct {
	Portfolio *content.Portfolio
	Err       error
}

type scrollTickMsg struct{}

type urlOpenedMsg struct {
	url string
	err error
}

type mode int

const (
	modeBrowse mode = iota
	modePalette
	modeForm
)

// Options wires a Model to its collaborators.
type Options struct {
	Portfolio *content.Portfolio
	Theme     ui.Theme

	Order  []string
	Offset float64
	Active *sections.ActiveCell

	// StartSection is scrolled to once the first window size is known.
	StartSection string

	Commands []palette.Command
	Contact  *contact.Service

	// Backdrop may be nil or inert; its surface is expected to be a
	// *canvas.Braille sized in pixels.
	Backdrop       *particles.Backdrop
	ExternalFrames bool

	CellWidth       int
	CellHeight      int
	ScrollFrequency float64
	ScrollDamping   float64

	OpenURL func(url string) error

	Context context.Context
	Cancel  context.CancelFunc
}

// Model is the bubbletea model.
type Model struct {
	portfolio *content.Portfolio
	theme     ui.Theme
	styles    ui.Styles
	keys      keyMap
	palKeys   paletteKeys
	help      help.Model

	viewport viewport.Model
	layout   ui.Layout
	ready    bool
	width    int
	height   int
	cellW    int
	cellH    int

	tracker  *sections.Tracker
	active   *sections.ActiveCell
	doc      *sections.Layout
	docRows  int
	cache    *ui.RenderCache
	renderer *glamour.TermRenderer
	rendKey  uint64

	spring       harmonica.Spring
	animate      bool
	scrolling    bool
	scrollPos    float64
	scrollVel    float64
	scrollTarget float64

	palette *palette.Palette
	form    contactForm
	mode    mode

	backdrop       *particles.Backdrop
	resizer        *ui.ResizeDebouncer
	externalFrames bool

	ctx     context.Context
	cancel  context.CancelFunc
	contact *contact.Service
	openURL func(string) error

	startSection string

	status    string
	statusErr bool
}

// New builds a model. It fails only when the section order is invalid.
func New(opts Options) (Model, error) {
	if opts.Portfolio == nil {
		opts.Portfolio = content.Default()
	}
	if len(opts.Order) == 0 {
		opts.Order = sections.DefaultOrder()
	}
	if opts.Active == nil {
		opts.Active = sections.NewActiveCell(opts.Order[0])
	}
	if opts.Commands == nil {
		opts.Commands = palette.DefaultCommands(opts.Portfolio.Profile.Resume)
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Theme.Name == "" {
		opts.Theme = ui.DetectTheme()
	}

	tracker := sections.NewTracker(opts.Offset, opts.Active)
	if err := tracker.Configure(opts.Order); err != nil {
		return Model{}, fmt.Errorf("invalid section order: %w", err)
	}

	styles := ui.NewStyles(opts.Theme)
	m := Model{
		portfolio:      opts.Portfolio,
		theme:          opts.Theme,
		styles:         styles,
		keys:           defaultKeys(),
		palKeys:        defaultPaletteKeys(),
		help:           help.New(),
		viewport:       viewport.New(0, 0),
		cellW:          opts.CellWidth,
		cellH:          opts.CellHeight,
		tracker:        tracker,
		active:         opts.Active,
		doc:            sections.NewLayout(),
		cache:          ui.NewRenderCache(64),
		animate:        opts.ScrollFrequency > 0,
		palette:        palette.New(opts.Commands),
		form:           newContactForm(styles),
		backdrop:       opts.Backdrop,
		externalFrames: opts.ExternalFrames,
		ctx:            opts.Context,
		cancel:         opts.Cancel,
		contact:        opts.Contact,
		openURL:        opts.OpenURL,
		startSection:   opts.StartSection,
	}
	if m.animate {
		damping := opts.ScrollDamping
		if damping <= 0 {
			damping = 1
		}
		m.spring = harmonica.NewSpring(harmonica.FPS(60), opts.ScrollFrequency, damping)
	}
	if m.backdrop != nil {
		bd, cw, ch := m.backdrop, float64(m.cellW), float64(m.cellH)
		m.resizer = ui.NewResizeDebouncer(ui.DefaultResizeDuration, func(cols, rows int) {
			bd.Resize(float64(cols)*cw, float64(rows)*ch)
		})
	}
	return m, nil
}

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.portfolio.Profile.Name + " · portfolio")
}

// Active returns the active section id.
func (m Model) Active() string { return m.active.Get() }

// Theme returns the current theme.
func (m Model) Theme() ui.Theme { return m.theme }

// PaletteOpen reports whether the command palette is shown.
func (m Model) PaletteOpen() bool { return m.mode == modePalette }

// FormOpen reports whether the contact form is shown.
func (m Model) FormOpen() bool { return m.mode == modeForm }

// ScrollOffset returns the first visible document row.
func (m Model) ScrollOffset() int { return m.viewport.YOffset }

// SectionRow returns the document row where id starts.
func (m Model) SectionRow(id string) (int, bool) {
	px, ok := m.doc.Start(id)
	return int(px) / m.cellH, ok
}

// Scrolling reports whether a smooth scroll is in flight.
func (m Model) Scrolling() bool { return m.scrolling }

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width, m.height = width, height
	m.layout = ui.NewLayout(width, height)
	m.viewport.Width = m.layout.ContentWidth()
	m.viewport.Height = m.layout.BodyHeight()
	m.help.Width = width
	m.form.setWidth(m.layout.OverlayWidth(ui.FormWidth) - 4)
	m.ready = true

	m.renderDocument()
	if m.startSection != "" {
		if row, ok := m.SectionRow(m.startSection); ok {
			m.active.Set(m.startSection)
			m.setOffset(row)
		}
		m.startSection = ""
	}
	if m.resizer != nil {
		m.resizer.Resize(width, m.layout.BodyHeight())
	}
	logging.UIDebug("resized to %dx%d (body %d rows)", width, height, m.viewport.Height)
}

// renderDocument renders every section and lays them out in pixels.
func (m *Model) renderDocument() {
	if !m.ready {
		return
	}
	width := m.layout.ContentWidth()
	if key := ui.ComputeKey(width, m.theme.IsDark); m.renderer == nil || key != m.rendKey {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.theme.GlamourStyle()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			logging.Get(logging.CategoryUI).Warn("markdown renderer unavailable: %v", err)
			r = nil
		}
		m.renderer = r
		m.rendKey = key
	}

	doc := sections.NewLayout()
	var lines []string
	var lastRows int
	for _, id := range m.tracker.Order() {
		kind, ok := sections.KindFromID(id)
		if !ok {
			continue
		}
		md := m.portfolio.Markdown(kind)
		out := m.cache.GetOrCompute(ui.ComputeKey(id, md, width, m.theme.IsDark), func() string {
			if m.renderer == nil {
				return md
			}
			s, err := m.renderer.Render(md)
			if err != nil {
				logging.Get(logging.CategoryUI).Warn("render %s: %v", id, err)
				return md
			}
			return s
		})
		sectionLines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		sectionLines = append(sectionLines, "")
		lines = append(lines, sectionLines...)
		lastRows = len(sectionLines)
		doc.Append(id, float64(len(sectionLines)*m.cellH))
	}

	// Pad so the last section can scroll up to the top.
	if pad := m.viewport.Height - lastRows; pad > 0 {
		lines = append(lines, make([]string, pad)...)
	}

	m.doc = doc
	m.docRows = len(lines)
	y := m.viewport.YOffset
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.SetYOffset(y)
	m.recompute()
}

func (m *Model) recompute() {
	scrollPx := float64(m.viewport.YOffset * m.cellH)
	m.tracker.Recompute(m.doc.At(scrollPx))
}

func (m *Model) maxOffset() int {
	return max(m.docRows-m.viewport.Height, 0)
}

func (m *Model) setOffset(y int) {
	y = min(max(y, 0), m.maxOffset())
	m.viewport.SetYOffset(y)
	m.recompute()
}

// scrollBy moves immediately and cancels any smooth scroll.
func (m *Model) scrollBy(rows int) {
	m.scrolling = false
	m.setOffset(m.viewport.YOffset + rows)
}

// scrollTo starts a smooth scroll to row.
func (m *Model) scrollTo(row int) tea.Cmd {
	target := min(max(row, 0), m.maxOffset())
	if !m.animate {
		m.scrolling = false
		m.setOffset(target)
		return nil
	}
	if !m.scrolling {
		m.scrollPos = float64(m.viewport.YOffset)
		m.scrollVel = 0
	}
	m.scrollTarget = float64(target)
	m.scrolling = true
	if m.externalFrames {
		return nil
	}
	return scrollTick()
}

// stepScroll advances the spring one frame and reports whether it is still moving.
func (m *Model) stepScroll() bool {
	if !m.scrolling {
		return false
	}
	m.scrollPos, m.scrollVel = m.spring.Update(m.scrollPos, m.scrollVel, m.scrollTarget)
	if math.Abs(m.scrollPos-m.scrollTarget) < 0.5 && math.Abs(m.scrollVel) < 0.5 {
		m.scrollPos, m.scrollVel = m.scrollTarget, 0
		m.scrolling = false
	}
	m.setOffset(int(math.Round(m.scrollPos)))
	return m.scrolling
}

func scrollTick() tea.Cmd {
	return tea.Tick(time.Second/60, func(time.Time) tea.Msg { return scrollTickMsg{} })
}

func (m *Model) toggleTheme() {
	m.theme = m.theme.Toggle()
	m.styles = ui.NewStyles(m.theme)
	m.form.applyStyles(m.styles)
	m.renderDocument()
	logging.UI("theme switched to %s", m.theme.Name)
}

// execute runs a palette command.
func (m *Model) execute(c palette.Command) tea.Cmd {
	logging.PaletteDebug("execute %s", c.ID)
	switch c.Action {
	case palette.ActionSection:
		m.active.Set(c.ID)
		row, ok := m.SectionRow(c.ID)
		if !ok {
			return nil
		}
		return m.scrollTo(row)
	case palette.ActionLink:
		return m.open(c.Href)
	case palette.ActionTheme:
		m.toggleTheme()
	}
	return nil
}

func (m *Model) open(url string) tea.Cmd {
	if m.openURL == nil {
		m.setStatus("Open "+url, false)
		return nil
	}
	opener := m.openURL
	return func() tea.Msg {
		return urlOpenedMsg{url: url, err: opener(url)}
	}
}

func (m *Model) openForm() tea.Cmd {
	m.palette.Close()
	m.mode = modeForm
	return m.form.open()
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// quit stops the animation loop and pending resizes. The loop goroutine is
// joined by the caller once the program has returned.
func (m *Model) quit() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	if m.resizer != nil {
		m.resizer.Cancel()
	}
	logging.UI("quit requested")
	return tea.Quit
}
