package gitx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StageFiles stages the provided paths. -A keeps deletions staged too while
// staying scoped to the pathspecs.
func StageFiles(repoRoot string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "-A", "--"}, paths...)
	_, err := runCombined(repoRoot, args...)
	return err
}

// UnstageFiles removes the provided paths from the index, keeping the
// working tree untouched.
func UnstageFiles(repoRoot string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"restore", "--staged", "--"}, paths...)
	_, err := runCombined(repoRoot, args...)
	return err
}

// Ignore appends the given paths to .gitignore at the repo root, skipping
// entries already present, then stages .gitignore so it does not linger as
// an untracked file itself.
func Ignore(repoRoot string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	ignorePath := filepath.Join(repoRoot, ".gitignore")

	existing := map[string]bool{}
	if b, err := os.ReadFile(ignorePath); err == nil {
		for _, line := range strings.Split(string(b), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				existing[line] = true
			}
		}
	}

	var add []string
	for _, p := range paths {
		if p != "" && !existing[p] {
			add = append(add, p)
			existing[p] = true
		}
	}
	if len(add) > 0 {
		f, err := os.OpenFile(ignorePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open .gitignore: %w", err)
		}
		for _, p := range add {
			if _, err := fmt.Fprintln(f, p); err != nil {
				f.Close()
				return fmt.Errorf("write .gitignore: %w", err)
			}
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close .gitignore: %w", err)
		}
	}
	return StageFiles(repoRoot, []string{".gitignore"})
}
