// Package tui implements the interactive terminal UI: a file list on the
// left, the selected file's diff on the right, and modal wizards for git
// operations.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stagerhq/stager/internal/config"
	"github.com/stagerhq/stager/internal/log"
	"github.com/stagerhq/stager/internal/prefs"
	"github.com/stagerhq/stager/internal/theme"
	"github.com/stagerhq/stager/internal/tui/components"
	"github.com/stagerhq/stager/internal/tui/wizards"
	"github.com/stagerhq/stager/internal/watch"
)

// Model is the bubbletea model for the whole application.
type Model struct {
	repoRoot string
	cfg      config.AppConfig
	theme    theme.Theme
	layout   Layout
	keys     KeyHandler

	fileList *components.FileList
	diff     *components.DiffView
	status   *components.StatusBar
	logView  *components.LogView

	wizard   wizards.Wizard
	showHelp bool
	showLog  bool

	filtering   bool
	filterInput textinput.Model

	diffStaged bool
	rawDiff    string
	branch     string

	watchCh <-chan struct{}
	watcher *watch.Watcher
}

// NewModel builds the initial model for a repository.
func NewModel(cfg config.AppConfig, repoRoot string) Model {
	th := theme.LoadFromRepo(repoRoot, cfg.Theme)
	fi := textinput.New()
	fi.Prompt = "filter: "
	fi.Placeholder = "path prefix"
	return Model{
		repoRoot:    repoRoot,
		cfg:         cfg,
		theme:       th,
		fileList:    components.NewFileList(cfg.ShowIcons),
		diff:        components.NewDiffView(th),
		status:      components.NewStatusBar(th),
		logView:     components.NewLogView(th),
		filterInput: fi,
	}
}

// Run starts the UI for the repository rooted at repoRoot.
func Run(repoRoot string, cfg config.AppConfig) error {
	m := NewModel(cfg, repoRoot)
	if cfg.AutoRefresh {
		w, err := watch.New(repoRoot)
		if err != nil {
			log.Printf("watcher unavailable, falling back to polling: %v", err)
		} else {
			m.watcher = w
			m.watchCh = w.Events()
			defer w.Close()
		}
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadFiles(m.repoRoot),
		loadBranch(m.repoRoot),
		loadLastCommit(m.repoRoot),
		loadPrefs(m.repoRoot),
		tickOnce(),
		awaitWatch(m.watchCh),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.layout.SetSize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		// polling fallback; the watcher covers most refreshes
		if m.cfg.AutoRefresh && m.watchCh == nil && m.wizard == nil {
			return m, tea.Batch(loadFiles(m.repoRoot), tickOnce())
		}
		return m, tickOnce()
	case watchMsg:
		cmds := []tea.Cmd{awaitWatch(m.watchCh)}
		if m.watcher == nil || m.watcher.ShouldRefresh(time.Now()) {
			cmds = append(cmds, loadFiles(m.repoRoot), loadBranch(m.repoRoot), loadLastCommit(m.repoRoot))
		}
		return m, tea.Batch(cmds...)
	case filesMsg:
		return m.handleFiles(msg)
	case diffMsg:
		return m.handleDiff(msg)
	case branchMsg:
		if msg.err == nil {
			m.branch = msg.name
			m.status.SetBranch(msg.name)
		}
		return m, nil
	case lastCommitMsg:
		if msg.err == nil {
			m.status.SetLastCommit(msg.summary)
		}
		return m, nil
	case logMsg:
		if msg.err != nil {
			m.status.SetNotice("log error: " + msg.err.Error())
			return m, nil
		}
		m.showLog = true
		m.logView.SetEntries(msg.title, msg.entries)
		return m, nil
	case prefsMsg:
		return m.handlePrefs(msg)
	case opMsg:
		return m.handleOp(msg)
	}

	// async wizard results arrive as wizard-private messages
	if m.wizard != nil {
		cmd := m.wizard.Update(msg)
		if m.wizard.IsComplete() {
			return m, tea.Batch(cmd, m.refreshAll())
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFiles(msg filesMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status.SetNotice("status error: " + msg.err.Error())
		return m, nil
	}
	m.fileList.SetFiles(msg.files)
	m.status.MarkRefreshed(time.Now())
	if sel := m.fileList.SelectedFile(); sel != nil {
		return m, loadDiff(m.repoRoot, *sel, m.diffStaged)
	}
	m.diff.Clear()
	m.rawDiff = ""
	return m, nil
}

func (m Model) handleDiff(msg diffMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status.SetNotice("diff error: " + msg.err.Error())
		m.diff.Clear()
		m.rawDiff = ""
		return m, nil
	}
	sel := m.fileList.SelectedFile()
	if sel == nil || sel.Path != msg.path || msg.staged != m.diffStaged {
		// stale result for a file no longer selected
		return m, nil
	}
	m.diff.SetDiff(msg.diff, msg.binary)
	m.rawDiff = msg.diff
	return m, nil
}

func (m Model) handlePrefs(msg prefsMsg) (tea.Model, tea.Cmd) {
	p := msg.prefs
	if p.SideSet {
		m.diff.SetSideBySide(p.SideBySide)
	}
	if p.WrapSet {
		m.diff.SetWrap(p.Wrap)
	}
	if p.LeftSet && p.LeftWidth > 0 {
		m.layout.LeftWidth = p.LeftWidth
	}
	if p.DiffMode == "staged" {
		m.diffStaged = true
	}
	return m, nil
}

func (m Model) handleOp(msg opMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status.SetNotice(msg.name + " error: " + msg.err.Error())
		return m, nil
	}
	switch msg.name {
	case "yank":
		m.status.SetNotice("diff copied to clipboard")
		return m, nil
	default:
		return m, loadFiles(m.repoRoot)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.wizard != nil {
		action, cmd := m.wizard.HandleKey(msg)
		if action == wizards.ActionClose {
			done := m.wizard.IsComplete()
			m.wizard = nil
			if done {
				return m, tea.Batch(cmd, m.refreshAll())
			}
			return m, cmd
		}
		return m, cmd
	}

	if m.showHelp {
		switch msg.String() {
		case "q", "h", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	if m.showLog {
		return m.handleLogKey(msg)
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	return m.handleMainKey(msg)
}

func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logView.Searching() {
		switch msg.String() {
		case "esc":
			m.logView.StopSearch()
			return m, nil
		case "enter":
			query := strings.TrimSpace(m.logView.StopSearch())
			if query == "" {
				return m, nil
			}
			if author, ok := strings.CutPrefix(query, "author:"); ok {
				return m, searchCommits(m.repoRoot, "", strings.TrimSpace(author))
			}
			return m, searchCommits(m.repoRoot, query, "")
		}
		return m, m.logView.Update(msg)
	}

	switch msg.String() {
	case "q", "esc", "l":
		m.showLog = false
	case "/":
		return m, m.logView.StartSearch()
	case "j", "down":
		m.logView.Scroll(1, m.layout.ContentHeight(0))
	case "k", "up":
		m.logView.Scroll(-1, m.layout.ContentHeight(0))
	case "r":
		return m, loadLog(m.repoRoot, m.cfg.LogCount)
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.fileList.SetFilter("")
		return m, m.loadSelectedDiff()
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, m.loadSelectedDiff()
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.fileList.SetFilter(m.filterInput.Value())
	return m, cmd
}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		if m.keys.Push(rune(key[0])) {
			m.status.SetKeyBuffer(m.keys.Buffer())
			return m, nil
		}
	}
	count := m.keys.Count()
	m.status.SetKeyBuffer("")
	height := m.layout.ContentHeight(0)

	switch key {
	case "q":
		return m, tea.Quit
	case "h":
		m.showHelp = true
	case "esc":
		if m.fileList.Filter() != "" {
			m.fileList.SetFilter("")
			m.filterInput.SetValue("")
			return m, m.loadSelectedDiff()
		}

	// wizards
	case "c":
		return m.openWizard(wizards.NewCommitWizard())
	case "p":
		return m.openWizard(wizards.NewPullWizard())
	case "P":
		return m.openWizard(wizards.NewPushWizard())
	case "b":
		return m.openWizard(wizards.NewBranchWizard())
	case "i":
		if m.fileList.SelectedFile() != nil {
			return m.openWizard(wizards.NewIgnoreWizard())
		}
		m.status.SetNotice("no file selected")

	// overlays and prompts
	case "l":
		return m, loadLog(m.repoRoot, m.cfg.LogCount)
	case "/":
		m.filtering = true
		m.filterInput.SetValue(m.fileList.Filter())
		return m, m.filterInput.Focus()

	// index operations
	case "s":
		if sel := m.fileList.SelectedFile(); sel != nil {
			return m, stageFile(m.repoRoot, sel.Path)
		}
	case "u":
		if sel := m.fileList.SelectedFile(); sel != nil {
			return m, unstageFile(m.repoRoot, sel.Path)
		}
	case "y":
		if m.rawDiff == "" {
			m.status.SetNotice("no diff to copy")
			return m, nil
		}
		return m, yankDiff(m.rawDiff)
	case "r":
		return m, m.refreshAll()

	// view toggles, persisted per repo
	case "v":
		m.diff.SetSideBySide(!m.diff.SideBySide())
		return m, m.savePref(func(root string) error {
			return prefs.SaveSideBySide(root, m.diff.SideBySide())
		})
	case "w":
		m.diff.SetWrap(!m.diff.Wrap())
		return m, m.savePref(func(root string) error {
			return prefs.SaveWrap(root, m.diff.Wrap())
		})
	case "t":
		m.diffStaged = !m.diffStaged
		mode := "worktree"
		if m.diffStaged {
			mode = "staged"
		}
		return m, tea.Batch(
			m.loadSelectedDiff(),
			m.savePref(func(root string) error { return prefs.SaveDiffMode(root, mode) }),
		)

	// selection movement
	case "j", "down":
		if m.fileList.MoveSelection(count) {
			return m, m.loadSelectedDiff()
		}
	case "k", "up":
		if m.fileList.MoveSelection(-count) {
			return m, m.loadSelectedDiff()
		}
	case "g":
		if m.fileList.GoToTop() {
			return m, m.loadSelectedDiff()
		}
	case "G":
		if m.fileList.GoToBottom() {
			return m, m.loadSelectedDiff()
		}
	case "[":
		m.fileList.Page(-count, height)
		return m, m.loadSelectedDiff()
	case "]":
		m.fileList.Page(count, height)
		return m, m.loadSelectedDiff()

	// diff scrolling
	case "pgdown":
		m.diff.Page(count, height)
	case "pgup":
		m.diff.Page(-count, height)
	case "J", "ctrl+d":
		m.diff.Scroll(count * height / 2)
	case "K", "ctrl+u":
		m.diff.Scroll(-count * height / 2)
	case "ctrl+e":
		m.diff.Scroll(count)
	case "ctrl+y":
		m.diff.Scroll(-count)
	case "home":
		m.diff.GoTop()
		m.diff.Home()
	case "end":
		m.diff.GoBottom(height)

	// horizontal scrolling
	case "right":
		m.diff.ScrollHorizontal(count * 8)
	case "left":
		m.diff.ScrollHorizontal(-count * 8)

	// pane sizing, persisted per repo
	case "<", "H":
		m.layout.AdjustLeftWidth(-2 * count)
		return m, m.savePref(func(root string) error {
			return prefs.SaveLeftWidth(root, m.layout.LeftWidth)
		})
	case ">", "L":
		m.layout.AdjustLeftWidth(2 * count)
		return m, m.savePref(func(root string) error {
			return prefs.SaveLeftWidth(root, m.layout.LeftWidth)
		})
	}
	return m, nil
}

func (m Model) openWizard(w wizards.Wizard) (tea.Model, tea.Cmd) {
	m.wizard = w
	ctx := wizards.Context{
		RepoRoot: m.repoRoot,
		Files:    m.fileList.Files(),
		Selected: m.fileList.SelectedFile(),
		Remote:   m.cfg.Remote,
	}
	return m, w.Init(ctx)
}

func (m Model) refreshAll() tea.Cmd {
	return tea.Batch(
		loadFiles(m.repoRoot),
		loadBranch(m.repoRoot),
		loadLastCommit(m.repoRoot),
	)
}

func (m Model) loadSelectedDiff() tea.Cmd {
	sel := m.fileList.SelectedFile()
	if sel == nil {
		m.diff.Clear()
		return nil
	}
	m.diff.SetLoading()
	return loadDiff(m.repoRoot, *sel, m.diffStaged)
}

func (m Model) savePref(save func(string) error) tea.Cmd {
	root := m.repoRoot
	return func() tea.Msg {
		if err := save(root); err != nil {
			log.Printf("pref save failed: %v", err)
		}
		return nil
	}
}

func (m Model) View() string {
	if m.layout.Width == 0 || m.layout.Height == 0 {
		return "Loading..."
	}

	if m.showLog {
		return m.viewLog()
	}

	var overlay []string
	if m.showHelp {
		overlay = m.helpOverlayLines(m.layout.Width)
	}
	if m.wizard != nil {
		overlay = append(overlay, m.wizard.RenderOverlay(m.layout.Width)...)
	}
	if m.filtering {
		overlay = append(overlay, strings.Repeat("─", m.layout.Width), m.filterInput.View())
	}
	contentHeight := m.layout.ContentHeight(len(overlay))

	leftW := m.layout.LeftWidth
	rightW := m.layout.RightWidth()
	sep := m.theme.DividerText("│")

	leftLines := m.fileList.Render(contentHeight)
	rightLines := m.diff.Render(rightW, contentHeight)

	var b strings.Builder
	b.WriteString(m.topBar())
	b.WriteByte('\n')
	b.WriteString(m.theme.DividerText(strings.Repeat("─", m.layout.Width)))
	b.WriteByte('\n')
	for i := 0; i < contentHeight; i++ {
		var l, r string
		if i < len(leftLines) {
			l = leftLines[i]
		}
		if i < len(rightLines) {
			r = rightLines[i]
		}
		b.WriteString(padToWidth(l, leftW))
		b.WriteString(sep)
		b.WriteString(padToWidth(r, rightW))
		b.WriteByte('\n')
	}
	for _, line := range overlay {
		b.WriteString(padToWidth(line, m.layout.Width))
		b.WriteByte('\n')
	}
	b.WriteString(m.theme.DividerText(strings.Repeat("─", m.layout.Width)))
	b.WriteByte('\n')
	b.WriteString(padToWidth(m.status.Render(m.layout.Width), m.layout.Width))
	return b.String()
}

func (m Model) viewLog() string {
	var b strings.Builder
	b.WriteString(padToWidth("History (/: search, r: reload, esc: close)", m.layout.Width))
	b.WriteByte('\n')
	b.WriteString(m.theme.DividerText(strings.Repeat("─", m.layout.Width)))
	b.WriteByte('\n')
	lines := m.logView.Render(m.layout.Width, m.layout.ContentHeight(0))
	for i := 0; i < m.layout.ContentHeight(0); i++ {
		var l string
		if i < len(lines) {
			l = lines[i]
		}
		b.WriteString(padToWidth(l, m.layout.Width))
		b.WriteByte('\n')
	}
	b.WriteString(m.theme.DividerText(strings.Repeat("─", m.layout.Width)))
	b.WriteByte('\n')
	b.WriteString(padToWidth(m.status.Render(m.layout.Width), m.layout.Width))
	return b.String()
}

func (m Model) topBar() string {
	title := "Changes"
	if m.fileList.Filter() != "" {
		title += " (filter: " + m.fileList.Filter() + ")"
	}
	right := ""
	if sel := m.fileList.SelectedFile(); sel != nil {
		right = sel.Path + " (" + sel.Label() + ")"
		if m.diffStaged {
			right += " [staged]"
		}
	}
	if right == "" {
		return padToWidth(title, m.layout.Width)
	}
	return padToWidth(title+" │ "+right, m.layout.Width)
}

func (m Model) helpOverlayLines(width int) []string {
	title := lipgloss.NewStyle().Bold(true).Render("Help — press 'h' or esc to close")
	keys := []string{
		"j/k or arrows   Move selection (prefix with a count)",
		"g / G, [ / ]    Top / bottom, page file list",
		"s / u           Stage / unstage selected file",
		"i               Add selected file to .gitignore",
		"c / p / P / b   Commit, pull, push, branches",
		"l               Commit history (/ searches, author:NAME)",
		"/               Filter files by path prefix",
		"t / v / w       Staged diff, side-by-side, wrap",
		"J/K, PgDn/PgUp  Scroll diff; ctrl+e/y by line",
		"left/right      Scroll diff horizontally; home resets",
		"</> or H/L      Adjust left pane width",
		"y               Copy current diff to clipboard",
		"r               Refresh now",
		"q               Quit",
	}
	lines := make([]string, 0, 2+len(keys))
	lines = append(lines, strings.Repeat("─", width))
	lines = append(lines, title)
	lines = append(lines, keys...)
	return lines
}
