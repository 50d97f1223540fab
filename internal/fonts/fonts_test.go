package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestFindPicksFirstFontInOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Mono", "Mono-Regular.TTF"))
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	touch(t, filepath.Join(dir, "Inter", "OFL.txt"))
	touch(t, filepath.Join(dir, "Serif.otf"))

	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), Find([]string{dir}))
}

func TestFindIgnoresExtensionCaseAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "LICENSE.txt"))
	touch(t, filepath.Join(dir, "Mono", "Mono-Regular.TTF"))

	assert.Equal(t, filepath.Join(dir, "Mono", "Mono-Regular.TTF"), Find([]string{dir}))
}

func TestFindSkipsMissingAndEmptyDirs(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	empty := t.TempDir()
	full := t.TempDir()
	touch(t, filepath.Join(full, "a.ttf"))

	assert.Equal(t, filepath.Join(full, "a.ttf"), Find([]string{missing, empty, full}))
	assert.Equal(t, "", Find([]string{missing, empty}))
}
