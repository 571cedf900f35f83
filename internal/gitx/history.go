package gitx

import (
	"strconv"
	"strings"
)

// Log returns the last max commit summaries, one "<hash> <subject>" per line.
func Log(repoRoot string, max int) ([]string, error) {
	if max <= 0 {
		max = 20
	}
	out, err := output(repoRoot, "log", "-n", strconv.Itoa(max), "--pretty=format:%h %s")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// SearchCommits returns summaries of commits whose message matches pattern,
// optionally narrowed by author.
func SearchCommits(repoRoot, pattern, author string) ([]string, error) {
	args := []string{"log", "--pretty=format:%h %s", "--grep=" + pattern}
	if author != "" {
		args = append(args, "--author="+author)
	}
	out, err := output(repoRoot, args...)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// LastCommitSummary returns short hash and subject of the last commit.
func LastCommitSummary(repoRoot string) (string, error) {
	out, err := output(repoRoot, "log", "-1", "--pretty=format:%h %s")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func splitLines(out string) []string {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
