package gitx

import "strings"

// CurrentBranch returns the name of the checked-out branch.
func CurrentBranch(repoRoot string) (string, error) {
	out, err := output(repoRoot, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Branches returns all local branch names.
func Branches(repoRoot string) ([]string, error) {
	out, err := output(repoRoot, "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// Checkout switches the working tree to the given branch.
func Checkout(repoRoot, branch string) error {
	_, err := runCombined(repoRoot, "checkout", branch)
	return err
}

// CreateBranch creates a branch from HEAD and switches to it.
func CreateBranch(repoRoot, name string) error {
	_, err := runCombined(repoRoot, "checkout", "-b", name)
	return err
}
