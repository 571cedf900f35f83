package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/stagerhq/stager/internal/theme"
)

// noticeTTL controls how long transient messages stay on the bar.
const noticeTTL = 4 * time.Second

// StatusBar renders the bottom line: branch, last commit, transient notices
// and the pending key-count buffer.
type StatusBar struct {
	theme       theme.Theme
	branch      string
	lastCommit  string
	notice      string
	noticeSetAt time.Time
	keyBuffer   string
	refreshedAt time.Time
}

// NewStatusBar creates a status bar with the given theme.
func NewStatusBar(th theme.Theme) *StatusBar {
	return &StatusBar{theme: th}
}

// SetBranch records the current branch name.
func (s *StatusBar) SetBranch(branch string) {
	s.branch = branch
}

// SetLastCommit records the most recent commit summary.
func (s *StatusBar) SetLastCommit(summary string) {
	s.lastCommit = summary
}

// SetNotice shows a transient message, replacing any previous one.
func (s *StatusBar) SetNotice(msg string) {
	s.notice = msg
	s.noticeSetAt = time.Now()
}

// SetKeyBuffer shows the pending numeric count, empty to clear.
func (s *StatusBar) SetKeyBuffer(buf string) {
	s.keyBuffer = buf
}

// MarkRefreshed records when the status snapshot was last reloaded.
func (s *StatusBar) MarkRefreshed(at time.Time) {
	s.refreshedAt = at
}

// Render produces the single status line, truncated to width.
func (s *StatusBar) Render(width int) string {
	parts := make([]string, 0, 4)
	if s.branch != "" {
		parts = append(parts, "⎇ "+s.branch)
	}
	if s.lastCommit != "" {
		parts = append(parts, s.lastCommit)
	}
	if !s.refreshedAt.IsZero() {
		parts = append(parts, s.refreshedAt.Format("15:04:05"))
	}
	line := strings.Join(parts, "  ·  ")

	if s.notice != "" && time.Since(s.noticeSetAt) < noticeTTL {
		line = s.notice
	} else if s.notice != "" {
		s.notice = ""
	}

	if s.keyBuffer != "" {
		line = fmt.Sprintf("%s  [%s]", line, s.keyBuffer)
	}
	return ansi.Truncate(s.theme.DividerText(line), width, "…")
}
