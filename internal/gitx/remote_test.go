package gitx

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPushToBareRemote(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "f.txt"), "hello\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")

	remote := filepath.Join(t.TempDir(), "remote.git")
	mustRun(t, dir, "git", "init", "--bare", "-q", remote)
	mustRun(t, dir, "git", "remote", "add", "origin", remote)

	// no upstream configured yet; Push must fall back to -u origin <branch>
	write(t, filepath.Join(dir, "f.txt"), "hello world\n")
	if err := StageFiles(dir, []string{"f.txt"}); err != nil {
		t.Fatal(err)
	}
	if err := Commit(dir, "update"); err != nil {
		t.Fatal(err)
	}
	if err := Push(dir); err != nil {
		t.Fatalf("push failed: %v", err)
	}

	// a second push with the upstream now set must also succeed
	write(t, filepath.Join(dir, "f.txt"), "hello again\n")
	if err := StageFiles(dir, []string{"f.txt"}); err != nil {
		t.Fatal(err)
	}
	if err := Commit(dir, "again"); err != nil {
		t.Fatal(err)
	}
	if _, err := PushWithOutput(dir); err != nil {
		t.Fatalf("second push failed: %v", err)
	}
}

func TestPushReview(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "f.txt"), "hello\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")

	remote := filepath.Join(t.TempDir(), "remote.git")
	mustRun(t, dir, "git", "init", "--bare", "-q", remote)
	mustRun(t, dir, "git", "remote", "add", "origin", remote)
	mustRun(t, dir, "git", "push", "-q", "-u", "origin", "main")

	// nothing pending
	review, err := PushReview(dir, "origin", "main")
	if err != nil {
		t.Fatalf("PushReview error: %v", err)
	}
	if review != "" {
		t.Fatalf("expected empty review, got %q", review)
	}

	write(t, filepath.Join(dir, "f.txt"), "changed\n")
	if err := StageFiles(dir, []string{"f.txt"}); err != nil {
		t.Fatal(err)
	}
	if err := Commit(dir, "pending commit"); err != nil {
		t.Fatal(err)
	}

	// default remote and branch resolution
	review, err = PushReview(dir, "", "")
	if err != nil {
		t.Fatalf("PushReview error: %v", err)
	}
	if !strings.Contains(review, "pending commit") {
		t.Fatalf("expected pending commit in review, got %q", review)
	}
	if strings.Contains(review, "init") {
		t.Fatalf("already-pushed commit in review: %q", review)
	}
}

func TestPullWithoutRemoteFails(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "f.txt"), "hello\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")

	out, err := PullWithOutput(dir)
	if err == nil {
		t.Fatalf("expected pull to fail without a remote, got output %q", out)
	}
	// the error carries git's message for the UI dialog
	if !strings.Contains(err.Error(), "git pull") {
		t.Fatalf("error does not identify the failed command: %v", err)
	}
}

func TestPushWithoutRemoteFails(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "f.txt"), "hello\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")

	if err := Push(dir); err == nil {
		t.Fatal("expected push to fail without a remote")
	}
}

func TestPullFromBareRemote(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "f.txt"), "hello\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")

	remote := filepath.Join(t.TempDir(), "remote.git")
	mustRun(t, dir, "git", "init", "--bare", "-q", remote)
	mustRun(t, dir, "git", "remote", "add", "origin", remote)
	mustRun(t, dir, "git", "push", "-q", "-u", "origin", "main")

	if _, err := PullWithOutput(dir); err != nil {
		t.Fatalf("pull failed: %v", err)
	}
}
