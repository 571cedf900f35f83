package gitx

import (
	"os/exec"
	"strings"
)

// DiffWorktree returns a unified diff between HEAD and the working tree for
// a single file. Untracked files are diffed against /dev/null.
func DiffWorktree(repoRoot, path string) (string, error) {
	var args []string
	if IsTracked(repoRoot, path) {
		args = []string{"diff", "--no-color", "--text", "HEAD", "--", path}
	} else {
		args = []string{"diff", "--no-color", "--no-index", "--text", "/dev/null", path}
	}
	return diffOutput(repoRoot, args)
}

// DiffStaged returns the unified diff of the index against HEAD for a file.
func DiffStaged(repoRoot, path string) (string, error) {
	return diffOutput(repoRoot, []string{"diff", "--no-color", "--text", "--cached", "--", path})
}

func diffOutput(repoRoot string, args []string) (string, error) {
	a := append([]string{"-C", repoRoot}, args...)
	cmd := exec.Command("git", a...)
	b, err := cmd.CombinedOutput()
	// git diff --no-index exits 1 when the files differ; output is still the diff
	if err != nil && len(b) == 0 {
		return "", err
	}
	return string(b), nil
}

// IsTracked reports whether the path is known to the index.
func IsTracked(repoRoot, path string) bool {
	cmd := exec.Command("git", "-C", repoRoot, "ls-files", "--error-unmatch", "--", path)
	return cmd.Run() == nil
}

// isBinary probes the numstat output, which reports "-\t-\tpath" for
// binary files.
func isBinary(repoRoot string, f FileStatus) bool {
	var args []string
	if f.Untracked() {
		args = []string{"-C", repoRoot, "diff", "--numstat", "--no-index", "/dev/null", f.Path}
	} else {
		args = []string{"-C", repoRoot, "diff", "--numstat", "HEAD", "--", f.Path}
	}
	cmd := exec.Command("git", args...)
	b, _ := cmd.Output()
	line := strings.TrimSpace(string(b))
	if line == "" {
		return false
	}
	parts := strings.SplitN(line, "\t", 3)
	return len(parts) >= 2 && (parts[0] == "-" || parts[1] == "-")
}
