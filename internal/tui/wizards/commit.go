package wizards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stagerhq/stager/internal/gitx"
)

// Commit wizard steps.
const (
	commitStepSelect = iota
	commitStepMessage
	commitStepConfirm
)

// CommitWizard walks through selecting files, writing a message and
// committing, optionally pushing afterwards.
type CommitWizard struct {
	repoRoot string
	files    []gitx.FileStatus
	selected map[string]bool
	index    int
	step     int
	input    textinput.Model
	running  bool
	pushToo  bool
	done     bool
	errMsg   string
}

// NewCommitWizard creates a commit wizard.
func NewCommitWizard() *CommitWizard {
	return &CommitWizard{}
}

func (w *CommitWizard) Init(ctx Context) tea.Cmd {
	w.repoRoot = ctx.RepoRoot
	w.files = append([]gitx.FileStatus(nil), ctx.Files...)
	w.selected = make(map[string]bool, len(w.files))
	for _, f := range w.files {
		w.selected[f.Path] = true
	}
	w.index = 0
	w.step = commitStepSelect

	ti := textinput.New()
	ti.Placeholder = "Commit message"
	ti.Prompt = "> "
	ti.CharLimit = 0
	w.input = ti
	return nil
}

func (w *CommitWizard) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch w.step {
	case commitStepSelect:
		return w.handleSelectKey(msg)
	case commitStepMessage:
		return w.handleMessageKey(msg)
	case commitStepConfirm:
		return w.handleConfirmKey(msg)
	}
	return ActionContinue, nil
}

func (w *CommitWizard) handleSelectKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return ActionClose, nil
	case "j", "down":
		if w.index < len(w.files)-1 {
			w.index++
		}
	case "k", "up":
		if w.index > 0 {
			w.index--
		}
	case " ":
		if len(w.files) > 0 {
			p := w.files[w.index].Path
			w.selected[p] = !w.selected[p]
		}
	case "a":
		all := true
		for _, f := range w.files {
			if !w.selected[f.Path] {
				all = false
				break
			}
		}
		for _, f := range w.files {
			w.selected[f.Path] = !all
		}
	case "enter":
		if len(w.selectedPaths()) == 0 {
			w.errMsg = "no files selected"
			return ActionContinue, nil
		}
		w.errMsg = ""
		w.step = commitStepMessage
		return ActionContinue, w.input.Focus()
	}
	return ActionContinue, nil
}

func (w *CommitWizard) handleMessageKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch msg.String() {
	case "esc":
		w.step = commitStepSelect
		w.input.Blur()
		return ActionContinue, nil
	case "enter":
		if strings.TrimSpace(w.input.Value()) == "" {
			w.errMsg = "empty commit message"
			return ActionContinue, nil
		}
		w.errMsg = ""
		w.step = commitStepConfirm
		w.input.Blur()
		return ActionContinue, nil
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return ActionContinue, cmd
}

func (w *CommitWizard) handleConfirmKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	if w.running {
		return ActionContinue, nil
	}
	switch msg.String() {
	case "esc":
		return ActionClose, nil
	case "b":
		if !w.done {
			w.step = commitStepMessage
			return ActionContinue, w.input.Focus()
		}
	case "y", "enter":
		if w.done {
			return ActionClose, nil
		}
		w.running = true
		w.pushToo = false
		w.errMsg = ""
		return ActionContinue, w.run(false)
	case "P":
		if !w.done {
			w.running = true
			w.pushToo = true
			w.errMsg = ""
			return ActionContinue, w.run(true)
		}
	}
	return ActionContinue, nil
}

type commitResultMsg struct {
	err    error
	pushed bool
}

func (w *CommitWizard) run(push bool) tea.Cmd {
	root := w.repoRoot
	paths := w.selectedPaths()
	message := w.input.Value()
	return func() tea.Msg {
		if err := gitx.StageFiles(root, paths); err != nil {
			return commitResultMsg{err: err}
		}
		if err := gitx.Commit(root, message); err != nil {
			return commitResultMsg{err: err}
		}
		if push {
			if err := gitx.Push(root); err != nil {
				return commitResultMsg{err: err, pushed: true}
			}
		}
		return commitResultMsg{pushed: push}
	}
}

func (w *CommitWizard) Update(msg tea.Msg) tea.Cmd {
	if res, ok := msg.(commitResultMsg); ok {
		w.running = false
		if res.err != nil {
			w.errMsg = res.err.Error()
			return nil
		}
		w.done = true
	}
	return nil
}

func (w *CommitWizard) RenderOverlay(width int) []string {
	lines := make([]string, 0, len(w.files)+4)
	lines = append(lines, strings.Repeat("─", width))
	bold := lipgloss.NewStyle().Bold(true)

	switch w.step {
	case commitStepSelect:
		lines = append(lines, bold.Render("Commit — select files (space: toggle, a: all, enter: continue, esc: cancel)"))
		if len(w.files) == 0 {
			lines = append(lines, "No changes to commit")
			break
		}
		for i, f := range w.files {
			cursor := "  "
			if i == w.index {
				cursor = "> "
			}
			mark := "[ ]"
			if w.selected[f.Path] {
				mark = "[x]"
			}
			lines = append(lines, fmt.Sprintf("%s%s %s %s", cursor, mark, f.Label(), f.Path))
		}
	case commitStepMessage:
		lines = append(lines, bold.Render("Commit — message (enter: continue, esc: back)"))
		lines = append(lines, w.input.View())
	case commitStepConfirm:
		lines = append(lines, bold.Render("Commit — confirm (y/enter: commit, P: commit & push, b: back, esc: cancel)"))
		lines = append(lines, fmt.Sprintf("Files: %d", len(w.selectedPaths())))
		lines = append(lines, "Message: "+w.input.Value())
		if w.running {
			if w.pushToo {
				lines = append(lines, "Committing & pushing...")
			} else {
				lines = append(lines, "Committing...")
			}
		}
		if w.done {
			if w.pushToo {
				lines = append(lines, "Committed and pushed. Press enter to close.")
			} else {
				lines = append(lines, "Committed. Press enter to close.")
			}
		}
	}
	if w.errMsg != "" {
		lines = append(lines, "Error: "+w.errMsg)
	}
	return lines
}

func (w *CommitWizard) IsComplete() bool { return w.done }

func (w *CommitWizard) Error() string { return w.errMsg }

func (w *CommitWizard) selectedPaths() []string {
	var out []string
	for _, f := range w.files {
		if w.selected[f.Path] {
			out = append(out, f.Path)
		}
	}
	return out
}
