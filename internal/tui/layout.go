package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	minPaneWidth = 20
	// top bar, top rule, bottom rule and status bar
	chromeRows = 4
)

// Layout tracks terminal dimensions and the left pane width.
type Layout struct {
	Width     int
	Height    int
	LeftWidth int
}

// SetSize records a terminal resize, initializing the left width once.
func (l *Layout) SetSize(width, height int) {
	l.Width = width
	l.Height = height
	if l.LeftWidth == 0 {
		l.LeftWidth = width / 3
		if l.LeftWidth < minPaneWidth {
			l.LeftWidth = minPaneWidth
		}
	}
	l.clampLeft()
}

// AdjustLeftWidth grows or shrinks the left pane, keeping both panes usable.
func (l *Layout) AdjustLeftWidth(delta int) {
	if l.LeftWidth == 0 {
		l.LeftWidth = l.Width / 3
	}
	l.LeftWidth += delta
	l.clampLeft()
}

func (l *Layout) clampLeft() {
	if l.LeftWidth < minPaneWidth {
		l.LeftWidth = minPaneWidth
	}
	maxLeft := l.Width - minPaneWidth - 1
	if maxLeft >= minPaneWidth && l.LeftWidth > maxLeft {
		l.LeftWidth = maxLeft
	}
}

// RightWidth is what remains after the left pane and the divider column.
func (l Layout) RightWidth() int {
	w := l.Width - l.LeftWidth - 1
	if w < 1 {
		w = 1
	}
	return w
}

// ContentHeight is the pane height once chrome and overlay rows are taken.
func (l Layout) ContentHeight(overlayRows int) int {
	h := l.Height - chromeRows - overlayRows
	if h < 1 {
		h = 1
	}
	return h
}

// padToWidth pads or truncates s to exactly w terminal cells, ANSI-aware.
func padToWidth(s string, w int) string {
	width := ansi.StringWidth(s)
	if width == w {
		return s
	}
	if width < w {
		return s + strings.Repeat(" ", w-width)
	}
	return ansi.Truncate(s, w, "…")
}
