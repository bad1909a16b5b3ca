package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"folio/cmd/folio/ui"
	"folio/internal/canvas"
	"folio/internal/particles"
	"folio/internal/sections"
)

// strongInk is the link opacity above which backdrop cells use the accent color.
const strongInk = 0.75

// View renders the screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}
	if m.layout.TooSmall() {
		return m.styles.Muted.Render(fmt.Sprintf(
			"Terminal too small (%dx%d). Need at least %dx%d.",
			m.width, m.height, ui.MinimumTerminalWidth, ui.MinimumTerminalHeight))
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.bodyView(),
		m.footerView(),
	)

	shadow := lipgloss.NewStyle().Background(m.theme.Border)
	switch m.mode {
	case modePalette:
		return overlayCenter(screen, m.paletteView(), m.width, m.height, shadow)
	case modeForm:
		return overlayCenter(screen, m.form.view(m.styles, m.layout.OverlayWidth(ui.FormWidth)), m.width, m.height, shadow)
	}
	return screen
}

func (m Model) scrollPx() int { return m.viewport.YOffset * m.cellH }

func (m Model) headerView() string {
	active := m.active.Get()

	var nav []string
	if !m.layout.IsCompact {
		for _, k := range sections.NavItems() {
			info := k.Info()
			style := m.styles.NavItem
			if info.ID == active {
				style = m.styles.NavActive
			}
			nav = append(nav, style.Render(info.NavLabel))
		}
	} else if k, ok := sections.KindFromID(active); ok {
		nav = append(nav, m.styles.NavActive.Render(k.Info().Title))
	}

	brand := m.styles.Brand.Render(clip(m.portfolio.Profile.Name, 28))
	links := lipgloss.JoinHorizontal(lipgloss.Top, nav...)

	style := m.styles.Header
	scrolled := m.scrollPx() > ui.ScrolledThreshold
	if scrolled {
		style = m.styles.HeaderScrolled
	}
	inner := m.width - style.GetHorizontalFrameSize()
	gap := max(inner-lipgloss.Width(brand)-lipgloss.Width(links), 1)
	top := style.Width(m.width).Render(brand + strings.Repeat(" ", gap) + links)

	second := ""
	if scrolled {
		second = m.styles.RenderDivider(m.width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, second)
}

func (m Model) footerView() string {
	left := m.statusLine()
	right := ""
	if m.scrollPx() > ui.ScrollTopThreshold {
		right = m.styles.ScrollTop.Render("↑ g top")
	}
	inner := m.width - m.styles.Footer.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		left = xansi.Truncate(left, max(inner-lipgloss.Width(right)-1, 0), "…")
		gap = max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	return m.styles.Footer.Render(left + strings.Repeat(" ", gap) + right)
}

// bodyView lays the visible document rows over the particle backdrop. Cells
// outside each line's text show the backdrop.
func (m Model) bodyView() string {
	height := m.viewport.Height
	lines := padLines(m.viewport.View(), height)
	left := m.layout.ContentLeft()
	width := m.width

	out := make([]string, height)
	drawn := false
	if m.backdrop != nil {
		m.backdrop.Draw(func(s particles.Surface) {
			b, ok := s.(*canvas.Braille)
			if !ok {
				return
			}
			drawn = true
			for row := range out {
				out[row] = m.composite(lines[row], left, width, func(from, to int) string {
					return m.backdropRun(b, row, from, to)
				})
			}
		})
	}
	if !drawn {
		for row := range out {
			out[row] = m.composite(lines[row], left, width, func(from, to int) string {
				return strings.Repeat(" ", max(to-from, 0))
			})
		}
	}
	return strings.Join(out, "\n")
}

// composite returns one screen row: backdrop cells, then the text of line
// placed at column left, then backdrop cells to the right edge.
func (m Model) composite(line string, left, width int, fill func(from, to int) string) string {
	plain := xansi.Strip(line)
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return fill(0, width)
	}
	lead := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
	end := xansi.StringWidth(trimmed)

	start := min(left+lead, width)
	stop := min(left+end, width)
	var b strings.Builder
	b.WriteString(fill(0, start))
	if stop > start {
		b.WriteString(xansi.Cut(line, lead, lead+(stop-start)))
		b.WriteString("\x1b[0m")
	}
	b.WriteString(fill(stop, width))
	return b.String()
}

// backdropRun renders cells [from, to) of a braille row, grouping cells of
// the same intensity under one style.
func (m Model) backdropRun(b *canvas.Braille, row, from, to int) string {
	if to <= from {
		return ""
	}
	var out, run strings.Builder
	class := -1
	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch class {
		case 1:
			out.WriteString(m.styles.ParticleDim.Render(run.String()))
		case 2:
			out.WriteString(m.styles.ParticleStrong.Render(run.String()))
		default:
			out.WriteString(run.String())
		}
		run.Reset()
	}
	for col := from; col < to; col++ {
		r, ink, ok := b.Cell(col, row)
		c := 0
		if ok {
			c = 1
			if ink >= strongInk {
				c = 2
			}
		}
		if c != class {
			flush()
			class = c
		}
		run.WriteRune(r)
	}
	flush()
	return out.String()
}

func (m Model) paletteView() string {
	w := m.layout.OverlayWidth(ui.PaletteWidth)
	inner := w - m.styles.Overlay.GetHorizontalFrameSize()

	var b strings.Builder
	b.WriteString(m.styles.Query.Render("› " + m.palette.Query()))
	b.WriteString("▏\n")
	b.WriteString(m.styles.RenderDivider(max(inner, 0)))
	b.WriteString("\n")

	results := m.palette.Results()
	if len(results) == 0 {
		b.WriteString(m.styles.Muted.Render("No results found."))
	}
	cursor := m.palette.Cursor()
	first := 0
	if cursor >= ui.PaletteMaxResults {
		first = cursor - ui.PaletteMaxResults + 1
	}
	for i := first; i < len(results) && i < first+ui.PaletteMaxResults; i++ {
		c := results[i]
		shortcut := m.styles.Shortcut.Render(string(c.Shortcut))
		nameW := max(inner-lipgloss.Width(shortcut)-2, 1)
		name := clip(c.Name, nameW)
		style := m.styles.Item
		if i == cursor {
			style = m.styles.ItemSelected
		}
		row := style.Width(max(inner-lipgloss.Width(shortcut), 1)).Render(name) + shortcut
		b.WriteString(row)
		if i < len(results)-1 && i < first+ui.PaletteMaxResults-1 {
			b.WriteString("\n")
		}
	}
	return m.styles.Overlay.Width(w - 2).Render(b.String())
}
