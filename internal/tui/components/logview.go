package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/stagerhq/stager/internal/theme"
)

// LogView is the commit history overlay. It shows recent commits and owns a
// search prompt for filtering history by message or author.
type LogView struct {
	theme     theme.Theme
	entries   []string
	title     string
	offset    int
	searching bool
	input     textinput.Model
}

// NewLogView creates an empty log overlay.
func NewLogView(th theme.Theme) *LogView {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "message pattern, or author:NAME"
	ti.CharLimit = 200
	return &LogView{theme: th, title: "Recent commits", input: ti}
}

// SetEntries replaces the visible commit list.
func (l *LogView) SetEntries(title string, entries []string) {
	l.title = title
	l.entries = entries
	l.offset = 0
}

// Scroll moves the visible window by delta lines.
func (l *LogView) Scroll(delta, height int) {
	l.offset += delta
	maxOffset := len(l.entries) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// StartSearch opens the search prompt.
func (l *LogView) StartSearch() tea.Cmd {
	l.searching = true
	l.input.SetValue("")
	return l.input.Focus()
}

// StopSearch closes the search prompt and returns the entered value.
func (l *LogView) StopSearch() string {
	l.searching = false
	l.input.Blur()
	return l.input.Value()
}

// Searching reports whether the prompt is capturing input.
func (l *LogView) Searching() bool {
	return l.searching
}

// Update forwards messages to the search input while it is active.
func (l *LogView) Update(msg tea.Msg) tea.Cmd {
	if !l.searching {
		return nil
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return cmd
}

// Render produces the overlay body at the given size.
func (l *LogView) Render(width, height int) []string {
	lines := make([]string, 0, height)
	lines = append(lines, l.theme.MetaText(l.title))
	if l.searching {
		lines = append(lines, l.input.View())
	}

	body := height - len(lines)
	if body < 1 {
		body = 1
	}
	if len(l.entries) == 0 {
		lines = append(lines, l.theme.DividerText("(no commits)"))
		return lines
	}
	end := l.offset + body
	if end > len(l.entries) {
		end = len(l.entries)
	}
	for _, e := range l.entries[l.offset:end] {
		lines = append(lines, ansi.Truncate(e, width, "…"))
	}
	if end < len(l.entries) {
		lines = append(lines, l.theme.DividerText(fmt.Sprintf("… %d more", len(l.entries)-end)))
	}
	return lines
}
