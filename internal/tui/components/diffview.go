package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wrap"

	"github.com/stagerhq/stager/internal/diffview"
	"github.com/stagerhq/stager/internal/theme"
)

// DiffView renders a file's diff in the right pane, either side by side or
// inline. It keeps its own vertical and horizontal scroll positions.
type DiffView struct {
	rows       []diffview.Row
	theme      theme.Theme
	sideBySide bool
	wrapLines  bool
	loading    bool
	binary     bool
	offset     int
	xOffset    int
	lineCount  int
}

// NewDiffView creates a diff view with the given theme.
func NewDiffView(th theme.Theme) *DiffView {
	return &DiffView{theme: th, sideBySide: true}
}

// SetTheme replaces the active theme.
func (d *DiffView) SetTheme(th theme.Theme) {
	d.theme = th
}

// SetLoading marks the view as waiting for diff output.
func (d *DiffView) SetLoading() {
	d.loading = true
}

// SetDiff installs new diff content and resets scrolling.
func (d *DiffView) SetDiff(unified string, binary bool) {
	d.loading = false
	d.binary = binary
	d.offset = 0
	d.xOffset = 0
	if binary {
		d.rows = nil
		return
	}
	d.rows = diffview.BuildRows(unified)
}

// Clear empties the view.
func (d *DiffView) Clear() {
	d.loading = false
	d.binary = false
	d.rows = nil
	d.offset = 0
	d.xOffset = 0
}

// SideBySide reports whether the view renders two columns.
func (d *DiffView) SideBySide() bool {
	return d.sideBySide
}

// SetSideBySide switches between two-column and inline rendering.
func (d *DiffView) SetSideBySide(on bool) {
	d.sideBySide = on
	d.offset = 0
	d.xOffset = 0
}

// Wrap reports whether long lines wrap instead of scrolling horizontally.
func (d *DiffView) Wrap() bool {
	return d.wrapLines
}

// SetWrap toggles line wrapping. Wrapping disables horizontal scroll.
func (d *DiffView) SetWrap(on bool) {
	d.wrapLines = on
	d.xOffset = 0
}

// Scroll moves the vertical offset by delta lines.
func (d *DiffView) Scroll(delta int) {
	d.offset += delta
	if d.offset < 0 {
		d.offset = 0
	}
}

// Page scrolls by whole pages of the given height.
func (d *DiffView) Page(delta, height int) {
	if height < 1 {
		height = 1
	}
	d.Scroll(delta * height)
}

// GoTop scrolls to the beginning of the diff.
func (d *DiffView) GoTop() {
	d.offset = 0
}

// GoBottom scrolls so the last line is visible.
func (d *DiffView) GoBottom(height int) {
	d.offset = d.lineCount - height
	if d.offset < 0 {
		d.offset = 0
	}
}

// ScrollHorizontal moves the horizontal offset; ignored while wrapping.
func (d *DiffView) ScrollHorizontal(delta int) {
	if d.wrapLines {
		return
	}
	d.xOffset += delta
	if d.xOffset < 0 {
		d.xOffset = 0
	}
}

// Home resets the horizontal offset.
func (d *DiffView) Home() {
	d.xOffset = 0
}

// Render produces the visible window of the diff at the given size.
func (d *DiffView) Render(width, height int) []string {
	if d.loading {
		return []string{"Loading diff..."}
	}
	if d.binary {
		return []string{d.theme.MetaText("Binary file (diff not shown)")}
	}
	if len(d.rows) == 0 {
		return []string{d.theme.DividerText("No diff to show")}
	}

	var lines []string
	if d.sideBySide {
		lines = d.renderSideBySide(width)
	} else {
		lines = d.renderInline(width)
	}
	d.lineCount = len(lines)

	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if d.offset > maxOffset {
		d.offset = maxOffset
	}
	end := d.offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[d.offset:end]
}

const gutterWidth = 5 // 4-digit line number plus a space

func (d *DiffView) renderSideBySide(width int) []string {
	colWidth := (width - 1) / 2
	textWidth := colWidth - gutterWidth
	if textWidth < 1 {
		textWidth = 1
	}
	divider := d.theme.DividerText("│")

	lines := make([]string, 0, len(d.rows))
	for _, row := range d.rows {
		switch row.Kind {
		case diffview.RowMeta:
			lines = append(lines, d.clip(d.theme.MetaText(row.Meta), width))
			continue
		case diffview.RowHunk:
			lines = append(lines, d.clip(d.theme.MetaText(row.Meta), width))
			continue
		}

		left := d.renderCell(row.Left, row.OldLine, leftStyle(row, d.theme), textWidth)
		right := d.renderCell(row.Right, row.NewLine, rightStyle(row, d.theme), textWidth)
		lines = append(lines, left+divider+right)
	}
	return lines
}

func (d *DiffView) renderInline(width int) []string {
	lines := make([]string, 0, len(d.rows))
	emit := func(s string) {
		if d.wrapLines {
			lines = append(lines, strings.Split(wrap.String(s, width), "\n")...)
			return
		}
		lines = append(lines, d.clip(s, width))
	}
	for _, row := range d.rows {
		switch row.Kind {
		case diffview.RowMeta, diffview.RowHunk:
			emit(d.theme.MetaText(row.Meta))
		case diffview.RowContext:
			emit(fmt.Sprintf("%4d %4d   %s", row.OldLine, row.NewLine, row.Left))
		case diffview.RowAdd:
			emit(fmt.Sprintf("     %4d  %s", row.NewLine,
				d.theme.AddText("+"+row.Right)))
		case diffview.RowDel:
			emit(fmt.Sprintf("%4d        %s", row.OldLine,
				d.theme.DelText("-"+row.Left)))
		case diffview.RowReplace:
			emit(fmt.Sprintf("%4d        %s", row.OldLine,
				styleSpans("-"+row.Left, shiftSpans(row.LeftSpans, 1), d.theme.DelText, d.theme.DelEmph)))
			emit(fmt.Sprintf("     %4d  %s", row.NewLine,
				styleSpans("+"+row.Right, shiftSpans(row.RightSpans, 1), d.theme.AddText, d.theme.AddEmph)))
		}
	}
	return lines
}

type cellStyle struct {
	base  func(string) string
	emph  func(string) string
	spans []diffview.Span
}

func leftStyle(row diffview.Row, th theme.Theme) cellStyle {
	switch row.Kind {
	case diffview.RowDel:
		return cellStyle{base: th.DelText}
	case diffview.RowReplace:
		return cellStyle{base: th.DelText, emph: th.DelEmph, spans: row.LeftSpans}
	}
	return cellStyle{}
}

func rightStyle(row diffview.Row, th theme.Theme) cellStyle {
	switch row.Kind {
	case diffview.RowAdd:
		return cellStyle{base: th.AddText}
	case diffview.RowReplace:
		return cellStyle{base: th.AddText, emph: th.AddEmph, spans: row.RightSpans}
	}
	return cellStyle{}
}

func (d *DiffView) renderCell(text string, lineNo int, style cellStyle, textWidth int) string {
	num := "    "
	if lineNo > 0 {
		num = fmt.Sprintf("%4d", lineNo)
	}
	styled := text
	if style.base != nil {
		if len(style.spans) > 0 && style.emph != nil {
			styled = styleSpans(text, style.spans, style.base, style.emph)
		} else {
			styled = style.base(text)
		}
	}
	return d.theme.DividerText(num) + " " + padTo(d.clip(styled, textWidth), textWidth)
}

// styleSpans styles the byte ranges in spans with emph and everything else
// with base.
func styleSpans(text string, spans []diffview.Span, base, emph func(string) string) string {
	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.Start > len(text) {
			break
		}
		end := sp.End
		if end > len(text) {
			end = len(text)
		}
		if sp.Start > pos {
			b.WriteString(base(text[pos:sp.Start]))
		}
		b.WriteString(emph(text[sp.Start:end]))
		pos = end
	}
	if pos < len(text) {
		b.WriteString(base(text[pos:]))
	}
	return b.String()
}

func shiftSpans(spans []diffview.Span, by int) []diffview.Span {
	if len(spans) == 0 {
		return nil
	}
	out := make([]diffview.Span, len(spans))
	for i, sp := range spans {
		out[i] = diffview.Span{Start: sp.Start + by, End: sp.End + by}
	}
	return out
}

// clip applies the horizontal offset and truncates to width, ANSI-aware.
func (d *DiffView) clip(s string, width int) string {
	if d.xOffset > 0 {
		s = ansi.TruncateLeft(s, d.xOffset, "")
	}
	return ansi.Truncate(s, width, "")
}

func padTo(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
