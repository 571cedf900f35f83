// Package watch signals working-tree activity so the UI can refresh its
// status snapshot without polling alone.
package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stagerhq/stager/internal/log"
)

// Debounce is the minimum interval between refreshes triggered by events.
const Debounce = 600 * time.Millisecond

// Watcher watches a repository working tree plus the parts of .git that
// reflect index and ref changes. Events are coalesced: the channel holds at
// most one pending signal.
type Watcher struct {
	root   string
	fsw    *fsnotify.Watcher
	events chan struct{}
	done   chan struct{}
	mu     sync.Mutex
	paths  map[string]struct{}
	last   time.Time
}

// New creates and starts a watcher rooted at the repository working tree.
func New(repoRoot string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		root:   repoRoot,
		fsw:    fsw,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
		paths:  make(map[string]struct{}),
	}
	w.addTree(repoRoot)
	gitDir := filepath.Join(repoRoot, ".git")
	w.addDir(gitDir)
	w.addTree(filepath.Join(gitDir, "refs"))
	go w.run()
	return w, nil
}

// Events returns the signal channel.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() {
	select {
	case <-w.done:
		return
	default:
	}
	close(w.done)
	_ = w.fsw.Close()
}

// ShouldRefresh checks debounce timing for watcher events.
func (w *Watcher) ShouldRefresh(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.last.IsZero() && now.Sub(w.last) < Debounce {
		return false
	}
	w.last = now
	return true
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				w.maybeAddDir(event.Name)
			}
			w.signal()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// maybeAddDir registers newly created directories so edits inside them keep
// producing events.
func (w *Watcher) maybeAddDir(path string) {
	if w.insideGitDir(path) {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	w.addDir(path)
}

func (w *Watcher) insideGitDir(path string) bool {
	gitDir := filepath.Join(w.root, ".git")
	return path != gitDir && strings.HasPrefix(path, gitDir+string(filepath.Separator))
}

func (w *Watcher) addDir(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.paths[path]; ok {
		return
	}
	if err := w.fsw.Add(path); err != nil {
		log.Printf("watcher add failed for %s: %v", path, err)
		return
	}
	w.paths[path] = struct{}{}
}

// addTree walks the working tree, skipping .git contents; those are watched
// selectively through addDir.
func (w *Watcher) addTree(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" && path != root {
			return filepath.SkipDir
		}
		w.addDir(path)
		return nil
	})
}
