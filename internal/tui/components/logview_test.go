package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/stagerhq/stager/internal/theme"
)

func TestLogViewRender(t *testing.T) {
	lv := NewLogView(theme.Dark())
	lv.SetEntries("Recent commits", []string{"abc first", "def second"})

	out := strip(lv.Render(80, 10))
	assert.Contains(t, out, "Recent commits")
	assert.Contains(t, out, "abc first")
	assert.Contains(t, out, "def second")
}

func TestLogViewEmpty(t *testing.T) {
	lv := NewLogView(theme.Dark())
	lv.SetEntries("Recent commits", nil)
	assert.Contains(t, strip(lv.Render(80, 10)), "(no commits)")
}

func TestLogViewScrollAndMoreMarker(t *testing.T) {
	entries := make([]string, 10)
	for i := range entries {
		entries[i] = string(rune('a'+i)) + " subject"
	}
	lv := NewLogView(theme.Dark())
	lv.SetEntries("Recent commits", entries)

	out := strip(lv.Render(80, 5))
	assert.Contains(t, out, "more")

	lv.Scroll(100, 5) // clamps to the end
	out = strip(lv.Render(80, 5))
	assert.Contains(t, out, "i subject")
	assert.NotContains(t, out, "b subject")
}

func TestLogViewSearchPrompt(t *testing.T) {
	lv := NewLogView(theme.Dark())
	lv.SetEntries("Recent commits", []string{"abc first"})

	cmd := lv.StartSearch()
	assert.NotNil(t, cmd)
	assert.True(t, lv.Searching())
	assert.Contains(t, ansi.Strip(lv.Render(80, 10)[1]), "/")

	lv.StopSearch()
	assert.False(t, lv.Searching())
}
