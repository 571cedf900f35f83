package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedUntilFileSet(t *testing.T) {
	Printf("before file %d", 1)

	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, SetFile(path))
	Printf("after file")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, "before file 1")
	assert.Contains(t, out, "after file")
	// buffered line must come first
	assert.Less(t, strings.Index(out, "before file 1"), strings.Index(out, "after file"))

	// empty path discards everything afterwards
	require.NoError(t, SetFile(""))
	Printf("discarded")
	b, _ = os.ReadFile(path)
	assert.NotContains(t, string(b), "discarded")
}
