// Package wizards contains the modal overlays for multi-step git operations:
// commit, pull, push, branch switching and ignoring files.
package wizards

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagerhq/stager/internal/gitx"
)

// Action tells the parent model what to do after a key press.
type Action int

const (
	ActionContinue Action = iota // keep the wizard open
	ActionClose                  // close the wizard
)

// Context is the repository state a wizard starts from.
type Context struct {
	RepoRoot string
	Files    []gitx.FileStatus
	Selected *gitx.FileStatus
	Remote   string
}

// Wizard is the interface all wizards implement.
type Wizard interface {
	// Init initializes the wizard with repo and file state.
	Init(ctx Context) tea.Cmd

	// HandleKey processes keyboard input and returns the action to take.
	HandleKey(msg tea.KeyMsg) (Action, tea.Cmd)

	// Update processes tea messages for async results.
	Update(msg tea.Msg) tea.Cmd

	// RenderOverlay returns the wizard UI lines.
	RenderOverlay(width int) []string

	// IsComplete reports whether the wizard finished successfully.
	IsComplete() bool

	// Error returns any error message.
	Error() string
}
