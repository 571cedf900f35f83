package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagerhq/stager/internal/gitx"
	"github.com/stagerhq/stager/internal/prefs"
)

func loadFiles(repoRoot string) tea.Cmd {
	return func() tea.Msg {
		files, err := gitx.Status(repoRoot)
		return filesMsg{files: files, err: err}
	}
}

func loadDiff(repoRoot string, f gitx.FileStatus, staged bool) tea.Cmd {
	return func() tea.Msg {
		if f.Binary {
			return diffMsg{path: f.Path, staged: staged, binary: true}
		}
		var (
			d   string
			err error
		)
		if staged {
			d, err = gitx.DiffStaged(repoRoot, f.Path)
		} else {
			d, err = gitx.DiffWorktree(repoRoot, f.Path)
		}
		return diffMsg{path: f.Path, staged: staged, diff: d, err: err}
	}
}

func loadBranch(repoRoot string) tea.Cmd {
	return func() tea.Msg {
		name, err := gitx.CurrentBranch(repoRoot)
		return branchMsg{name: name, err: err}
	}
}

func loadLastCommit(repoRoot string) tea.Cmd {
	return func() tea.Msg {
		s, err := gitx.LastCommitSummary(repoRoot)
		return lastCommitMsg{summary: s, err: err}
	}
}

func loadLog(repoRoot string, max int) tea.Cmd {
	return func() tea.Msg {
		entries, err := gitx.Log(repoRoot, max)
		return logMsg{title: "Recent commits", entries: entries, err: err}
	}
}

func searchCommits(repoRoot, pattern, author string) tea.Cmd {
	return func() tea.Msg {
		entries, err := gitx.SearchCommits(repoRoot, pattern, author)
		title := "Commits matching " + pattern
		if author != "" {
			title = "Commits by " + author
		}
		return logMsg{title: title, entries: entries, err: err}
	}
}

func loadPrefs(repoRoot string) tea.Cmd {
	return func() tea.Msg {
		return prefsMsg{prefs: prefs.Load(repoRoot)}
	}
}

func stageFile(repoRoot, path string) tea.Cmd {
	return func() tea.Msg {
		return opMsg{name: "stage", err: gitx.StageFiles(repoRoot, []string{path})}
	}
}

func unstageFile(repoRoot, path string) tea.Cmd {
	return func() tea.Msg {
		return opMsg{name: "unstage", err: gitx.UnstageFiles(repoRoot, []string{path})}
	}
}

func yankDiff(diff string) tea.Cmd {
	return func() tea.Msg {
		return opMsg{name: "yank", err: clipboard.WriteAll(diff)}
	}
}

func tickOnce() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return tickMsg{} })
}

// awaitWatch blocks on the watcher channel and converts the signal to a
// message. Re-issued after every watchMsg.
func awaitWatch(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return watchMsg{}
	}
}
