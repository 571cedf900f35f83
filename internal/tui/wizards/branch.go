package wizards

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stagerhq/stager/internal/gitx"
)

// BranchWizard lists local branches for checkout and can create new ones.
type BranchWizard struct {
	repoRoot string
	current  string
	branches []string
	index    int
	creating bool
	input    textinput.Model
	running  bool
	done     bool
	errMsg   string
}

// NewBranchWizard creates a branch wizard.
func NewBranchWizard() *BranchWizard {
	return &BranchWizard{}
}

func (w *BranchWizard) Init(ctx Context) tea.Cmd {
	w.repoRoot = ctx.RepoRoot
	ti := textinput.New()
	ti.Placeholder = "new branch name"
	ti.Prompt = "> "
	w.input = ti

	root := w.repoRoot
	return func() tea.Msg {
		branches, err := gitx.Branches(root)
		current, cerr := gitx.CurrentBranch(root)
		if err == nil {
			err = cerr
		}
		return branchListMsg{branches: branches, current: current, err: err}
	}
}

func (w *BranchWizard) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	if w.running {
		return ActionContinue, nil
	}
	if w.creating {
		switch msg.String() {
		case "esc":
			w.creating = false
			w.input.Blur()
			return ActionContinue, nil
		case "enter":
			name := strings.TrimSpace(w.input.Value())
			if name == "" {
				w.errMsg = "empty branch name"
				return ActionContinue, nil
			}
			w.errMsg = ""
			w.running = true
			root := w.repoRoot
			return ActionContinue, func() tea.Msg {
				return checkoutResultMsg{branch: name, err: gitx.CreateBranch(root, name)}
			}
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return ActionContinue, cmd
	}

	switch msg.String() {
	case "esc", "q":
		return ActionClose, nil
	case "j", "down":
		if w.index < len(w.branches)-1 {
			w.index++
		}
	case "k", "up":
		if w.index > 0 {
			w.index--
		}
	case "n":
		w.creating = true
		w.errMsg = ""
		return ActionContinue, w.input.Focus()
	case "enter":
		if w.done {
			return ActionClose, nil
		}
		if len(w.branches) == 0 {
			return ActionContinue, nil
		}
		name := w.branches[w.index]
		if name == w.current {
			return ActionClose, nil
		}
		w.running = true
		root := w.repoRoot
		return ActionContinue, func() tea.Msg {
			return checkoutResultMsg{branch: name, err: gitx.Checkout(root, name)}
		}
	}
	return ActionContinue, nil
}

type branchListMsg struct {
	branches []string
	current  string
	err      error
}

type checkoutResultMsg struct {
	branch string
	err    error
}

func (w *BranchWizard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case branchListMsg:
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return nil
		}
		w.branches = msg.branches
		w.current = msg.current
		for i, b := range w.branches {
			if b == w.current {
				w.index = i
				break
			}
		}
	case checkoutResultMsg:
		w.running = false
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return nil
		}
		w.current = msg.branch
		w.done = true
	}
	return nil
}

func (w *BranchWizard) RenderOverlay(width int) []string {
	lines := make([]string, 0, len(w.branches)+4)
	lines = append(lines, strings.Repeat("─", width))
	bold := lipgloss.NewStyle().Bold(true)
	switch {
	case w.running:
		lines = append(lines, bold.Render("Branch — switching..."))
	case w.done:
		lines = append(lines, bold.Render("Branch — now on "+w.current+" (enter: close)"))
	case w.creating:
		lines = append(lines, bold.Render("Branch — create (enter: create & switch, esc: back)"))
		lines = append(lines, w.input.View())
	default:
		lines = append(lines, bold.Render("Branch — switch (enter: checkout, n: new, esc: cancel)"))
		for i, b := range w.branches {
			cursor := "  "
			if i == w.index {
				cursor = "> "
			}
			mark := "  "
			if b == w.current {
				mark = "* "
			}
			lines = append(lines, cursor+mark+b)
		}
	}
	if w.errMsg != "" {
		lines = append(lines, "Error: "+w.errMsg)
	}
	return lines
}

func (w *BranchWizard) IsComplete() bool { return w.done }

func (w *BranchWizard) Error() string { return w.errMsg }
