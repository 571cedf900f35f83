package wizards

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagerhq/stager/internal/gitx"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	mustRun(t, dir, "git", "-c", "init.defaultBranch=main", "init", "-q")
	mustRun(t, dir, "git", "config", "user.email", "test@example.com")
	mustRun(t, dir, "git", "config", "user.name", "Test")
	return dir
}

func mustRun(t *testing.T, dir, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("%s %v: %v\n%s", name, args, err, out)
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step drives a key through the wizard and, when a command comes back, runs
// it synchronously and feeds the result to Update.
func step(t *testing.T, w Wizard, msg tea.KeyMsg) Action {
	t.Helper()
	action, cmd := w.HandleKey(msg)
	for cmd != nil {
		res := cmd()
		if res == nil {
			break
		}
		cmd = w.Update(res)
	}
	return action
}

func runInit(t *testing.T, w Wizard, ctx Context) {
	t.Helper()
	cmd := w.Init(ctx)
	for cmd != nil {
		res := cmd()
		if res == nil {
			break
		}
		cmd = w.Update(res)
	}
}

func TestCommitWizardCommits(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "a.txt"), "hello\n")
	write(t, filepath.Join(dir, "b.txt"), "world\n")

	files, err := gitx.Status(dir)
	if err != nil {
		t.Fatal(err)
	}

	w := NewCommitWizard()
	runInit(t, w, Context{RepoRoot: dir, Files: files})

	// deselect b.txt, keep a.txt
	step(t, w, keyRunes("j"))
	step(t, w, keyRunes(" "))
	step(t, w, keyRunes("k"))
	step(t, w, tea.KeyMsg{Type: tea.KeyEnter})

	for _, r := range "add a" {
		step(t, w, keyRunes(string(r)))
	}
	step(t, w, tea.KeyMsg{Type: tea.KeyEnter})
	step(t, w, keyRunes("y"))

	if !w.IsComplete() {
		t.Fatalf("commit did not complete: %s", w.Error())
	}

	summary, err := gitx.LastCommitSummary(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(summary, "add a") {
		t.Fatalf("last commit = %q, want suffix %q", summary, "add a")
	}

	// b.txt stays uncommitted
	files, err = gitx.Status(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Path != "b.txt" {
		t.Fatalf("status after commit = %+v", files)
	}
}

func TestCommitWizardRejectsEmptySelection(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "a.txt"), "hello\n")
	files, err := gitx.Status(dir)
	if err != nil {
		t.Fatal(err)
	}

	w := NewCommitWizard()
	runInit(t, w, Context{RepoRoot: dir, Files: files})
	step(t, w, keyRunes("a")) // deselect all
	step(t, w, tea.KeyMsg{Type: tea.KeyEnter})

	if w.Error() != "no files selected" {
		t.Fatalf("error = %q", w.Error())
	}
	if w.step != commitStepSelect {
		t.Fatal("wizard advanced without a selection")
	}
}

func TestCommitWizardRejectsEmptyMessage(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "a.txt"), "hello\n")
	files, err := gitx.Status(dir)
	if err != nil {
		t.Fatal(err)
	}

	w := NewCommitWizard()
	runInit(t, w, Context{RepoRoot: dir, Files: files})
	step(t, w, tea.KeyMsg{Type: tea.KeyEnter})
	step(t, w, tea.KeyMsg{Type: tea.KeyEnter}) // empty message

	if w.Error() != "empty commit message" {
		t.Fatalf("error = %q", w.Error())
	}
}

func TestIgnoreWizard(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "temp.log"), "noise\n")
	files, err := gitx.Status(dir)
	if err != nil {
		t.Fatal(err)
	}

	w := NewIgnoreWizard()
	runInit(t, w, Context{RepoRoot: dir, Files: files, Selected: &files[0]})
	step(t, w, keyRunes("y"))

	if !w.IsComplete() {
		t.Fatalf("ignore did not complete: %s", w.Error())
	}
	b, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "temp.log\n" {
		t.Fatalf(".gitignore = %q", b)
	}
}

func TestBranchWizardCheckout(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "a.txt"), "hello\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")
	mustRun(t, dir, "git", "branch", "feature")

	w := NewBranchWizard()
	runInit(t, w, Context{RepoRoot: dir})

	// move the cursor onto "feature" and check it out
	target := -1
	for i, b := range w.branches {
		if b == "feature" {
			target = i
		}
	}
	if target < 0 {
		t.Fatalf("feature branch missing from %v", w.branches)
	}
	for w.index < target {
		step(t, w, keyRunes("j"))
	}
	for w.index > target {
		step(t, w, keyRunes("k"))
	}
	step(t, w, tea.KeyMsg{Type: tea.KeyEnter})

	if !w.IsComplete() {
		t.Fatalf("checkout did not complete: %s", w.Error())
	}
	current, err := gitx.CurrentBranch(dir)
	if err != nil {
		t.Fatal(err)
	}
	if current != "feature" {
		t.Fatalf("current branch = %q, want feature", current)
	}
}

func TestBranchWizardCreate(t *testing.T) {
	dir := initRepo(t)
	write(t, filepath.Join(dir, "a.txt"), "hello\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")

	w := NewBranchWizard()
	runInit(t, w, Context{RepoRoot: dir})
	step(t, w, keyRunes("n"))
	for _, r := range "topic" {
		step(t, w, keyRunes(string(r)))
	}
	step(t, w, tea.KeyMsg{Type: tea.KeyEnter})

	if !w.IsComplete() {
		t.Fatalf("create did not complete: %s", w.Error())
	}
	current, err := gitx.CurrentBranch(dir)
	if err != nil {
		t.Fatal(err)
	}
	if current != "topic" {
		t.Fatalf("current branch = %q, want topic", current)
	}
}

func TestPushWizardReviewListsPendingCommits(t *testing.T) {
	dir := initRepo(t)
	remote := t.TempDir()
	mustRun(t, remote, "git", "init", "-q", "--bare")
	mustRun(t, dir, "git", "remote", "add", "origin", remote)

	write(t, filepath.Join(dir, "a.txt"), "hello\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "init")
	mustRun(t, dir, "git", "push", "-q", "-u", "origin", "main")

	write(t, filepath.Join(dir, "a.txt"), "hello world\n")
	mustRun(t, dir, "git", "add", ".")
	mustRun(t, dir, "git", "commit", "-q", "-m", "pending change")

	w := NewPushWizard()
	runInit(t, w, Context{RepoRoot: dir, Remote: "origin"})

	if len(w.pending) != 1 || !strings.HasSuffix(w.pending[0], "pending change") {
		t.Fatalf("pending = %v", w.pending)
	}

	step(t, w, tea.KeyMsg{Type: tea.KeyEnter})
	if !w.IsComplete() {
		t.Fatalf("push did not complete: %s", w.Error())
	}
}

func TestPullWizardWithoutRemoteFails(t *testing.T) {
	dir := initRepo(t)

	w := NewPullWizard()
	runInit(t, w, Context{RepoRoot: dir})
	step(t, w, keyRunes("y"))

	if w.IsComplete() {
		t.Fatal("pull should fail without a remote")
	}
	if w.Error() == "" {
		t.Fatal("expected an error message")
	}
}
