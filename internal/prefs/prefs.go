// Package prefs persists per-repository UI preferences in the repo's local
// git config, so they follow the checkout rather than the machine.
package prefs

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Prefs represents persisted UI preferences. The *Set flags distinguish
// "unset" from a stored false/zero.
type Prefs struct {
	SideBySide bool
	SideSet    bool
	Wrap       bool
	WrapSet    bool
	LeftWidth  int
	LeftSet    bool
	DiffMode   string // "worktree" or "staged"
}

const (
	keySideBySide = "stager.sideBySide"
	keyWrap       = "stager.wrap"
	keyLeftWidth  = "stager.leftWidth"
	keyDiffMode   = "stager.diffMode"
)

// Load reads preferences from the repository's local git config.
func Load(repoRoot string) Prefs {
	var p Prefs
	if s, ok := get(repoRoot, keySideBySide); ok {
		p.SideSet = true
		p.SideBySide = parseBool(s)
	}
	if s, ok := get(repoRoot, keyWrap); ok {
		p.WrapSet = true
		p.Wrap = parseBool(s)
	}
	if s, ok := get(repoRoot, keyLeftWidth); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n > 0 {
			p.LeftSet = true
			p.LeftWidth = n
		}
	}
	if s, ok := get(repoRoot, keyDiffMode); ok {
		if s == "staged" || s == "worktree" {
			p.DiffMode = s
		}
	}
	return p
}

// SaveSideBySide persists the side-by-side pref.
func SaveSideBySide(repoRoot string, v bool) error {
	return set(repoRoot, keySideBySide, boolStr(v))
}

// SaveWrap persists the wrap pref.
func SaveWrap(repoRoot string, v bool) error {
	return set(repoRoot, keyWrap, boolStr(v))
}

// SaveLeftWidth persists the left column width.
func SaveLeftWidth(repoRoot string, w int) error {
	if w <= 0 {
		return fmt.Errorf("invalid left width: %d", w)
	}
	return set(repoRoot, keyLeftWidth, strconv.Itoa(w))
}

// SaveDiffMode persists which diff the right pane shows.
func SaveDiffMode(repoRoot, mode string) error {
	if mode != "staged" && mode != "worktree" {
		return fmt.Errorf("invalid diff mode: %q", mode)
	}
	return set(repoRoot, keyDiffMode, mode)
}

func get(repoRoot, key string) (string, bool) {
	cmd := exec.Command("git", "-C", repoRoot, "config", "--get", key)
	b, err := cmd.Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}

func set(repoRoot, key, value string) error {
	cmd := exec.Command("git", "-C", repoRoot, "config", "--local", key, value)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git config %s: %w: %s", key, err, string(out))
	}
	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func boolStr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
