package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// padLines returns exactly h lines of s.
func padLines(s string, h int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		return lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return lines
}

// overlayCenter draws fg over the middle of a w x h background, with a
// one-cell shadow.
func overlayCenter(bg, fg string, w, h int, shadow lipgloss.Style) string {
	bgLines := padLines(bg, h)
	fgLines := strings.Split(fg, "\n")
	fgH := min(len(fgLines), h)
	fgW := 0
	for _, ln := range fgLines {
		fgW = max(fgW, xansi.StringWidth(ln))
	}
	if fgW <= 0 || fgH <= 0 {
		return strings.Join(bgLines, "\n")
	}
	fgW = min(fgW, w)

	x := max((w-fgW)/2, 0)
	y := max((h-fgH)/3, 0)

	shadowLine := shadow.Render(strings.Repeat(" ", fgW))
	shade := make([]string, fgH)
	for i := range shade {
		shade[i] = shadowLine
	}
	overlayAt(bgLines, shade, w, x+1, y+1, fgW)
	overlayAt(bgLines, fgLines[:fgH], w, x, y, fgW)
	return strings.Join(bgLines, "\n")
}

func overlayAt(bgLines, fgLines []string, w, x, y, fgW int) {
	if fgW <= 0 {
		return
	}
	x, y = max(x, 0), max(y, 0)
	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		left := xansi.Cut(bgLine, 0, x)
		if n := xansi.StringWidth(left); n < x {
			left += strings.Repeat(" ", x-n)
		}
		right := xansi.Cut(bgLine, x+fgW, w)

		fgLine := fgLines[i]
		if n := xansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = xansi.Cut(fgLine, 0, fgW)
		}
		bgLines[y+i] = left + "\x1b[0m" + fgLine + "\x1b[0m" + right
	}
}
