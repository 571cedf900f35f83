package wizards

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stagerhq/stager/internal/gitx"
)

// PushWizard first lists the commits that would be pushed, then runs the
// push on confirmation.
type PushWizard struct {
	repoRoot string
	remote   string
	pending  []string
	loaded   bool
	running  bool
	done     bool
	output   string
	errMsg   string
}

// NewPushWizard creates a push wizard.
func NewPushWizard() *PushWizard {
	return &PushWizard{}
}

func (w *PushWizard) Init(ctx Context) tea.Cmd {
	w.repoRoot = ctx.RepoRoot
	w.remote = ctx.Remote
	root, remote := w.repoRoot, w.remote
	return func() tea.Msg {
		out, err := gitx.PushReview(root, remote, "")
		return pushReviewMsg{review: out, err: err}
	}
}

func (w *PushWizard) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
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
			out, err := gitx.PushWithOutput(root)
			return pushResultMsg{output: out, err: err}
		}
	}
	return ActionContinue, nil
}

type pushReviewMsg struct {
	review string
	err    error
}

type pushResultMsg struct {
	output string
	err    error
}

func (w *PushWizard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pushReviewMsg:
		w.loaded = true
		if msg.err != nil {
			// review is advisory; the push itself may still work
			w.pending = nil
			return nil
		}
		if msg.review != "" {
			w.pending = strings.Split(msg.review, "\n")
		}
	case pushResultMsg:
		w.running = false
		w.output = strings.TrimSpace(msg.output)
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return nil
		}
		w.done = true
	}
	return nil
}

func (w *PushWizard) RenderOverlay(width int) []string {
	lines := make([]string, 0, len(w.pending)+6)
	lines = append(lines, strings.Repeat("─", width))
	bold := lipgloss.NewStyle().Bold(true)
	switch {
	case w.running:
		lines = append(lines, bold.Render("Push — running..."))
	case w.done:
		lines = append(lines, bold.Render("Push — done (enter: close)"))
	case w.errMsg != "":
		lines = append(lines, bold.Render("Push — failed (enter: close)"))
	default:
		lines = append(lines, bold.Render("Push — review (y/enter: push, esc: cancel)"))
		if !w.loaded {
			lines = append(lines, "Checking pending commits...")
		} else if len(w.pending) == 0 {
			lines = append(lines, "Nothing new to push (push anyway to set upstream).")
		} else {
			lines = append(lines, fmt.Sprintf("%d commit(s) to push:", len(w.pending)))
			for _, c := range w.pending {
				lines = append(lines, "  "+c)
			}
		}
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

func (w *PushWizard) IsComplete() bool { return w.done }

func (w *PushWizard) Error() string { return w.errMsg }
