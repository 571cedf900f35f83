package wizards

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stagerhq/stager/internal/gitx"
)

// PullWizard confirms and runs git pull, showing its output.
type PullWizard struct {
	repoRoot string
	running  bool
	done     bool
	output   string
	errMsg   string
}

// NewPullWizard creates a pull wizard.
func NewPullWizard() *PullWizard {
	return &PullWizard{}
}

func (w *PullWizard) Init(ctx Context) tea.Cmd {
	w.repoRoot = ctx.RepoRoot
	return nil
}

func (w *PullWizard) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
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
		w.running = true
		root := w.repoRoot
		return ActionContinue, func() tea.Msg {
			out, err := gitx.PullWithOutput(root)
			return pullResultMsg{output: out, err: err}
		}
	}
	return ActionContinue, nil
}

type pullResultMsg struct {
	output string
	err    error
}

func (w *PullWizard) Update(msg tea.Msg) tea.Cmd {
	if res, ok := msg.(pullResultMsg); ok {
		w.running = false
		w.output = strings.TrimSpace(res.output)
		if res.err != nil {
			w.errMsg = res.err.Error()
			return nil
		}
		w.done = true
	}
	return nil
}

func (w *PullWizard) RenderOverlay(width int) []string {
	lines := make([]string, 0, 8)
	lines = append(lines, strings.Repeat("─", width))
	bold := lipgloss.NewStyle().Bold(true)
	switch {
	case w.running:
		lines = append(lines, bold.Render("Pull — running..."))
	case w.done:
		lines = append(lines, bold.Render("Pull — done (enter: close)"))
	case w.errMsg != "":
		lines = append(lines, bold.Render("Pull — failed (enter: close)"))
	default:
		lines = append(lines, bold.Render("Pull — run git pull? (y/enter: pull, esc: cancel)"))
	}
	for _, l := range strings.Split(w.output, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if w.errMsg != "" {
		lines = append(lines, "Error: "+w.errMsg)
	}
	return lines
}

func (w *PullWizard) IsComplete() bool { return w.done }

func (w *PullWizard) Error() string { return w.errMsg }
