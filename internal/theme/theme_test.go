package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForName(t *testing.T) {
	assert.Equal(t, Dark(), ForName("dark"))
	assert.Equal(t, Light(), ForName("light"))
	assert.Equal(t, Dark(), ForName("anything else"))
}

func TestLoadFromRepo_MergesOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".stager"), 0o755))
	override := `{"addColor": "42", "delBgColor": "99"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".stager", "theme.json"), []byte(override), 0o644))

	th := LoadFromRepo(dir, "dark")
	assert.Equal(t, "42", th.AddColor)
	assert.Equal(t, "99", th.DelBgColor)
	// untouched fields keep the base value
	assert.Equal(t, Dark().DelColor, th.DelColor)
}

func TestLoadFromRepo_NoOverride(t *testing.T) {
	assert.Equal(t, Light(), LoadFromRepo(t.TempDir(), "light"))
}

func TestLoadFromRepo_MalformedOverrideIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".stager"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".stager", "theme.json"), []byte("{nope"), 0o644))

	assert.Equal(t, Dark(), LoadFromRepo(dir, "dark"))
}
