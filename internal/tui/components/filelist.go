package components

import (
	"fmt"
	"os"
	"strings"
	"time"

	devicons "github.com/epilande/go-devicons"

	"github.com/stagerhq/stager/internal/gitx"
)

// FileList manages the left pane status list. A path-prefix filter narrows
// the visible entries; selection indexes into the filtered view.
type FileList struct {
	files     []gitx.FileStatus
	filter    string
	visible   []gitx.FileStatus
	selected  int
	offset    int
	showIcons bool
}

// NewFileList creates a new file list.
func NewFileList(showIcons bool) *FileList {
	return &FileList{showIcons: showIcons}
}

// SetFiles replaces the list, preserving selection by path when possible.
func (f *FileList) SetFiles(files []gitx.FileStatus) {
	var selPath string
	if cur := f.SelectedFile(); cur != nil {
		selPath = cur.Path
	}
	f.files = files
	f.rebuild()
	if selPath != "" {
		for i, file := range f.visible {
			if file.Path == selPath {
				f.selected = i
				return
			}
		}
	}
	f.clampSelection()
}

// SetFilter narrows the list to paths with the given prefix.
func (f *FileList) SetFilter(prefix string) {
	f.filter = prefix
	f.rebuild()
	f.clampSelection()
}

// Filter returns the active path-prefix filter.
func (f *FileList) Filter() string {
	return f.filter
}

// Files returns the currently visible files.
func (f *FileList) Files() []gitx.FileStatus {
	return f.visible
}

// AllFiles returns the unfiltered list.
func (f *FileList) AllFiles() []gitx.FileStatus {
	return f.files
}

// Selected returns the selected index into the visible list.
func (f *FileList) Selected() int {
	return f.selected
}

// SelectedFile returns the currently selected file, or nil.
func (f *FileList) SelectedFile() *gitx.FileStatus {
	if len(f.visible) == 0 || f.selected < 0 || f.selected >= len(f.visible) {
		return nil
	}
	return &f.visible[f.selected]
}

// MoveSelection moves the selection by delta; reports whether it changed.
func (f *FileList) MoveSelection(delta int) bool {
	if len(f.visible) == 0 {
		return false
	}
	newSel := f.selected + delta
	if newSel < 0 {
		newSel = 0
	}
	if newSel >= len(f.visible) {
		newSel = len(f.visible) - 1
	}
	changed := newSel != f.selected
	f.selected = newSel
	return changed
}

// GoToTop moves selection to the first file.
func (f *FileList) GoToTop() bool {
	if len(f.visible) == 0 || f.selected == 0 {
		return false
	}
	f.selected = 0
	return true
}

// GoToBottom moves selection to the last file.
func (f *FileList) GoToBottom() bool {
	if len(f.visible) == 0 {
		return false
	}
	last := len(f.visible) - 1
	if f.selected == last {
		return false
	}
	f.selected = last
	return true
}

// Page scrolls by whole pages, keeping the selection on screen.
func (f *FileList) Page(delta, visibleCount int) {
	if visibleCount <= 0 {
		visibleCount = 10
	}
	step := (visibleCount - 1) * delta
	if step == 0 {
		step = delta
	}
	f.offset += step
	f.clampOffset(visibleCount)
	if f.selected < f.offset {
		f.selected = f.offset
	} else if f.selected >= f.offset+visibleCount {
		f.selected = f.offset + visibleCount - 1
	}
	f.clampSelection()
}

// Render renders the visible window of the list.
func (f *FileList) Render(height int) []string {
	lines := make([]string, 0, height)
	if len(f.visible) == 0 {
		if f.filter != "" {
			lines = append(lines, fmt.Sprintf("No changes matching %q", f.filter))
		} else {
			lines = append(lines, "No changes detected")
		}
		return lines
	}

	f.ensureVisible(height)
	start := f.offset
	end := start + height
	if end > len(f.visible) {
		end = len(f.visible)
	}
	for i := start; i < end; i++ {
		file := f.visible[i]
		marker := "  "
		if i == f.selected {
			marker = "> "
		}
		if f.showIcons {
			lines = append(lines, fmt.Sprintf("%s%s %s %s", marker, file.Label(), iconFor(file.Path), file.Path))
		} else {
			lines = append(lines, fmt.Sprintf("%s%s %s", marker, file.Label(), file.Path))
		}
	}
	return lines
}

func (f *FileList) rebuild() {
	if f.filter == "" {
		f.visible = f.files
		return
	}
	visible := make([]gitx.FileStatus, 0, len(f.files))
	for _, file := range f.files {
		if strings.HasPrefix(file.Path, f.filter) {
			visible = append(visible, file)
		}
	}
	f.visible = visible
}

func (f *FileList) clampSelection() {
	if f.selected >= len(f.visible) {
		f.selected = len(f.visible) - 1
	}
	if f.selected < 0 {
		f.selected = 0
	}
}

func (f *FileList) clampOffset(visibleCount int) {
	maxStart := len(f.visible) - visibleCount
	if maxStart < 0 {
		maxStart = 0
	}
	if f.offset > maxStart {
		f.offset = maxStart
	}
	if f.offset < 0 {
		f.offset = 0
	}
}

func (f *FileList) ensureVisible(visibleCount int) {
	if visibleCount <= 0 {
		return
	}
	if f.selected < f.offset {
		f.offset = f.selected
	} else if f.selected >= f.offset+visibleCount {
		f.offset = f.selected - visibleCount + 1
	}
	f.clampOffset(visibleCount)
}

type iconInfo struct{ name string }

func (i iconInfo) Name() string       { return i.name }
func (i iconInfo) Size() int64        { return 0 }
func (i iconInfo) Mode() os.FileMode  { return 0 }
func (i iconInfo) ModTime() time.Time { return time.Time{} }
func (i iconInfo) IsDir() bool        { return false }
func (i iconInfo) Sys() any           { return nil }

func iconFor(path string) string {
	return devicons.IconForInfo(iconInfo{name: path}).Icon
}
