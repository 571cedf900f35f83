package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/stagerhq/stager/internal/diffview"
	"github.com/stagerhq/stager/internal/theme"
)

const sampleDiff = "diff --git a/f.txt b/f.txt\n" +
	"index 111..222 100644\n" +
	"--- a/f.txt\n" +
	"+++ b/f.txt\n" +
	"@@ -1,3 +1,3 @@\n" +
	" one\n" +
	"-two\n" +
	"+two changed\n" +
	" three\n"

func strip(lines []string) string {
	return ansi.Strip(strings.Join(lines, "\n"))
}

func TestDiffViewLoading(t *testing.T) {
	d := NewDiffView(theme.Dark())
	d.SetLoading()
	assert.Equal(t, []string{"Loading diff..."}, d.Render(80, 10))
}

func TestDiffViewBinary(t *testing.T) {
	d := NewDiffView(theme.Dark())
	d.SetDiff("", true)
	assert.Contains(t, strip(d.Render(80, 10)), "Binary file")
}

func TestDiffViewEmpty(t *testing.T) {
	d := NewDiffView(theme.Dark())
	d.SetDiff("", false)
	assert.Contains(t, strip(d.Render(80, 10)), "No diff to show")
}

func TestDiffViewSideBySide(t *testing.T) {
	d := NewDiffView(theme.Dark())
	d.SetDiff(sampleDiff, false)

	out := strip(d.Render(100, 20))
	assert.Contains(t, out, "@@ -1,3 +1,3 @@")
	assert.Contains(t, out, "two changed")
	assert.Contains(t, out, "│")
	// line numbers from the hunk header
	assert.Contains(t, out, "   1")
	assert.Contains(t, out, "   3")
}

func TestDiffViewInline(t *testing.T) {
	d := NewDiffView(theme.Dark())
	d.SetSideBySide(false)
	d.SetDiff(sampleDiff, false)

	out := strip(d.Render(100, 20))
	assert.Contains(t, out, "-two")
	assert.Contains(t, out, "+two changed")
}

func TestDiffViewScrollClamps(t *testing.T) {
	d := NewDiffView(theme.Dark())
	d.SetDiff(sampleDiff, false)

	d.Scroll(-5)
	lines := d.Render(100, 3)
	assert.Contains(t, strip(lines[:1]), "diff --git")

	d.Scroll(1000)
	lines = d.Render(100, 3)
	// clamped to the tail of the diff
	assert.Contains(t, strip(lines), "three")
}

func TestDiffViewHorizontalScroll(t *testing.T) {
	d := NewDiffView(theme.Dark())
	d.SetSideBySide(false)
	d.SetDiff("@@ -1 +1 @@\n+abcdefghij\n", false)

	d.ScrollHorizontal(15)
	out := strip(d.Render(20, 5))
	assert.NotContains(t, out, "abc")

	d.Home()
	out = strip(d.Render(20, 5))
	assert.Contains(t, out, "abc")
}

func TestDiffViewWrapDisablesHorizontalScroll(t *testing.T) {
	d := NewDiffView(theme.Dark())
	d.SetSideBySide(false)
	d.SetWrap(true)
	d.ScrollHorizontal(10)

	d.SetDiff("@@ -1 +1 @@\n+abcdefghij\n", false)
	out := strip(d.Render(8, 10))
	assert.Contains(t, out, "abc")
}

func TestStyleSpans(t *testing.T) {
	base := func(s string) string { return "[" + s + "]" }
	emph := func(s string) string { return "<" + s + ">" }

	assert.Equal(t, "[hello]", styleSpans("hello", nil, base, emph))
	assert.Equal(t, "[he]<ll>[o]",
		styleSpans("hello", []diffview.Span{{Start: 2, End: 4}}, base, emph))
	// span past the end is clipped
	assert.Equal(t, "[h]<ello>",
		styleSpans("hello", []diffview.Span{{Start: 1, End: 99}}, base, emph))
}
