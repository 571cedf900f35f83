package wizards

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stagerhq/stager/internal/gitx"
)

// IgnoreWizard confirms appending the selected path to .gitignore. The
// updated .gitignore is staged so the change shows up ready to commit.
type IgnoreWizard struct {
	repoRoot string
	path     string
	running  bool
	done     bool
	errMsg   string
}

// NewIgnoreWizard creates an ignore wizard.
func NewIgnoreWizard() *IgnoreWizard {
	return &IgnoreWizard{}
}

func (w *IgnoreWizard) Init(ctx Context) tea.Cmd {
	w.repoRoot = ctx.RepoRoot
	if ctx.Selected != nil {
		w.path = ctx.Selected.Path
	}
	return nil
}

func (w *IgnoreWizard) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	if w.running {
		return ActionContinue, nil
	}
	switch msg.String() {
	case "esc", "q":
		return ActionClose, nil
	case "y", "enter":
		if w.done || w.errMsg != "" {
			return ActionClose, nil
		}
		if w.path == "" {
			w.errMsg = "no file selected"
			return ActionContinue, nil
		}
		w.running = true
		root, path := w.repoRoot, w.path
		return ActionContinue, func() tea.Msg {
			return ignoreResultMsg{err: gitx.Ignore(root, []string{path})}
		}
	}
	return ActionContinue, nil
}

type ignoreResultMsg struct {
	err error
}

func (w *IgnoreWizard) Update(msg tea.Msg) tea.Cmd {
	if res, ok := msg.(ignoreResultMsg); ok {
		w.running = false
		if res.err != nil {
			w.errMsg = res.err.Error()
			return nil
		}
		w.done = true
	}
	return nil
}

func (w *IgnoreWizard) RenderOverlay(width int) []string {
	lines := make([]string, 0, 4)
	lines = append(lines, strings.Repeat("─", width))
	bold := lipgloss.NewStyle().Bold(true)
	switch {
	case w.running:
		lines = append(lines, bold.Render("Ignore — updating .gitignore..."))
	case w.done:
		lines = append(lines, bold.Render("Ignore — added "+w.path+" (enter: close)"))
	case w.errMsg != "":
		lines = append(lines, bold.Render("Ignore — failed (enter: close)"))
		lines = append(lines, "Error: "+w.errMsg)
	default:
		lines = append(lines, bold.Render("Ignore — add to .gitignore? (y/enter: confirm, esc: cancel)"))
		lines = append(lines, "  "+w.path)
	}
	return lines
}

func (w *IgnoreWizard) IsComplete() bool { return w.done }

func (w *IgnoreWizard) Error() string { return w.errMsg }
