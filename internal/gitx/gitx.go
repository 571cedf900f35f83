// Package gitx wraps the git command line for the UI. It never interprets
// repository internals itself; every operation shells out to git and
// reformats the output.
package gitx

import (
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// FileStatus is a single entry of `git status --porcelain`.
type FileStatus struct {
	Path     string
	OrigPath string // previous path for renames, empty otherwise
	Index    byte   // X column: state of the index relative to HEAD
	Worktree byte   // Y column: state of the working tree relative to the index
	Binary   bool
}

// Untracked reports whether the file is unknown to git.
func (f FileStatus) Untracked() bool {
	return f.Index == '?' && f.Worktree == '?'
}

// Staged reports whether the file has changes recorded in the index.
func (f FileStatus) Staged() bool {
	return f.Index != ' ' && f.Index != '?'
}

// Unstaged reports whether the working tree differs from the index.
func (f FileStatus) Unstaged() bool {
	return f.Worktree != ' ' && f.Worktree != '?'
}

// Deleted reports whether the file is deleted on either side.
func (f FileStatus) Deleted() bool {
	return f.Index == 'D' || f.Worktree == 'D'
}

// Code returns the two-character XY status code, e.g. "M ", " M", "??".
func (f FileStatus) Code() string {
	return string([]byte{f.Index, f.Worktree})
}

// Label returns a short tag for list rendering, e.g. "US" or "D".
func (f FileStatus) Label() string {
	var tags []string
	if f.Deleted() {
		tags = append(tags, "D")
	}
	if f.Untracked() {
		tags = append(tags, "U")
	}
	if f.Staged() {
		tags = append(tags, "S")
	}
	if f.Unstaged() {
		tags = append(tags, "M")
	}
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, "")
}

// RepoRoot resolves the repository root from a given path (or current dir).
func RepoRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}
	cmd := exec.Command("git", "-C", path, "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("rev-parse: %w", err)
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", errors.New("empty git root")
	}
	return root, nil
}

// Status lists all changed files, sorted by path. The list is rebuilt from
// scratch on every call; callers treat it as a snapshot.
func Status(repoRoot string) ([]FileStatus, error) {
	out, err := output(repoRoot, "status", "--porcelain", "--untracked-files=all")
	if err != nil {
		return nil, err
	}
	files := parsePorcelain(out)
	for i := range files {
		files[i].Binary = isBinary(repoRoot, files[i])
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// parsePorcelain parses `git status --porcelain` (v1) output.
func parsePorcelain(out string) []FileStatus {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	files := make([]FileStatus, 0, len(lines))
	for _, line := range lines {
		if len(line) < 4 {
			continue
		}
		fs := FileStatus{Index: line[0], Worktree: line[1]}
		path := line[3:]
		if i := strings.Index(path, " -> "); i >= 0 {
			fs.OrigPath = unquotePath(path[:i])
			path = path[i+4:]
		}
		fs.Path = unquotePath(path)
		files = append(files, fs)
	}
	return files
}

// unquotePath strips the quoting git applies to paths with special characters.
func unquotePath(p string) string {
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		u := p[1 : len(p)-1]
		u = strings.ReplaceAll(u, `\"`, `"`)
		u = strings.ReplaceAll(u, `\\`, `\`)
		return u
	}
	return p
}

// output runs git in repoRoot and returns stdout. Used for queries where
// stderr noise is not part of the result.
func output(repoRoot string, args ...string) (string, error) {
	a := append([]string{"-C", repoRoot}, args...)
	cmd := exec.Command("git", a...)
	b, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(b), nil
}

// runCombined runs git in repoRoot for mutating operations. The combined
// output is folded into the error so the UI can show what git said.
func runCombined(repoRoot string, args ...string) (string, error) {
	a := append([]string{"-C", repoRoot}, args...)
	cmd := exec.Command("git", a...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return string(b), fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(b)))
	}
	return string(b), nil
}
