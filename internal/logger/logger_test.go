package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(l *Logger) {
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }
}

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sim.txt")
	l := New(path)
	fixedClock(l)

	l.Log("Space-time grid: ON")
	l.Logf("Grid mode: %s", "3D")

	want := []string{
		"[2024-03-01 12:30:00] Space-time grid: ON",
		"[2024-03-01 12:30:00] Grid mode: 3D",
	}
	assert.Equal(t, want, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
}

func TestLinesIsBoundedAndCopied(t *testing.T) {
	l := New("")
	for i := 0; i < MaxLines+20; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	require.Len(t, lines, MaxLines)
	assert.True(t, strings.HasSuffix(lines[0], "line 20"))
	assert.True(t, strings.HasSuffix(lines[MaxLines-1], "line 519"))

	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}
