package tui

import (
	"github.com/stagerhq/stager/internal/gitx"
	"github.com/stagerhq/stager/internal/prefs"
)

// tickMsg drives the periodic fallback refresh.
type tickMsg struct{}

// watchMsg reports filesystem activity from the watcher.
type watchMsg struct{}

type filesMsg struct {
	files []gitx.FileStatus
	err   error
}

type diffMsg struct {
	path   string
	staged bool
	diff   string
	binary bool
	err    error
}

type branchMsg struct {
	name string
	err  error
}

type lastCommitMsg struct {
	summary string
	err     error
}

type logMsg struct {
	title   string
	entries []string
	err     error
}

type prefsMsg struct {
	prefs prefs.Prefs
}

// opMsg reports the result of a fire-and-forget git operation such as
// staging, unstaging or ignoring a file.
type opMsg struct {
	name string
	err  error
}
