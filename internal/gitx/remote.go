package gitx

import (
	"errors"
	"strings"
)

// Commit records the index with the given message.
func Commit(repoRoot, message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.New("empty commit message")
	}
	_, err := runCombined(repoRoot, "commit", "-m", message)
	return err
}

// Pull fetches and integrates from the configured upstream.
func Pull(repoRoot string) error {
	_, err := PullWithOutput(repoRoot)
	return err
}

// PullWithOutput runs git pull and returns its output for display.
func PullWithOutput(repoRoot string) (string, error) {
	return runCombined(repoRoot, "pull")
}

// Push pushes the current branch.
func Push(repoRoot string) error {
	_, err := PushWithOutput(repoRoot)
	return err
}

// PushWithOutput pushes the current branch and returns git's output. When no
// upstream is configured it retries with -u against the first remote.
func PushWithOutput(repoRoot string) (string, error) {
	out, err := runCombined(repoRoot, "push")
	if err == nil {
		return out, nil
	}
	branch, berr := CurrentBranch(repoRoot)
	if berr != nil {
		return out, err
	}
	remote := firstRemote(repoRoot)
	if remote == "" {
		return out, err
	}
	return runCombined(repoRoot, "push", "-u", remote, branch)
}

// PushReview returns the summaries of commits that would be pushed,
// i.e. <remote>/<branch>..HEAD. Branch defaults to the current branch.
func PushReview(repoRoot, remote, branch string) (string, error) {
	if remote == "" {
		remote = firstRemote(repoRoot)
		if remote == "" {
			return "", errors.New("no remote configured")
		}
	}
	if branch == "" {
		var err error
		branch, err = CurrentBranch(repoRoot)
		if err != nil {
			return "", err
		}
	}
	out, err := output(repoRoot, "log", "--pretty=format:%h %s", remote+"/"+branch+"..HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func firstRemote(repoRoot string) string {
	out, err := output(repoRoot, "remote")
	if err != nil {
		return ""
	}
	remotes := strings.Fields(out)
	if len(remotes) == 0 {
		return ""
	}
	for _, r := range remotes {
		if r == "origin" {
			return r
		}
	}
	return remotes[0]
}
