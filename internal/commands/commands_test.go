package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		args []string
		ok   bool
	}{
		{"cmd grid --3d", []string{"grid", "--3d"}, true},
		{"cmd   zoom  --distance 400 ", []string{"zoom", "--distance", "400"}, true},
		{"cmd ", nil, true},
		{"hello there", nil, false},
		{"CMD grid", nil, false},
	}
	for _, tt := range tests {
		args, ok := Parse(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.args, args, tt.line)
	}
}

func TestExecuteResetsFlagsBetweenRuns(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("grid")
	threeD := fs.Bool("3d", false, "3D lattice")
	off := fs.Bool("off", false, "hide the grid")
	var calls [][2]bool
	r.Register("grid", "toggle the grid", fs, func([]string) error {
		calls = append(calls, [2]bool{*threeD, *off})
		return nil
	})

	require.NoError(t, r.Execute([]string{"grid", "--3d", "--off"}))
	require.NoError(t, r.Execute([]string{"grid"}))
	assert.Equal(t, [][2]bool{{true, true}, {false, false}}, calls)
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	var got []string
	r.Register("echo", "print arguments", nil, func(args []string) error {
		got = args
		return nil
	})
	r.Register("fail", "always fails", nil, func([]string) error { return boom })

	assert.Error(t, r.Execute(nil))
	assert.EqualError(t, r.Execute([]string{"nope"}), "unknown command: nope")
	assert.ErrorIs(t, r.Execute([]string{"fail"}), boom)
	assert.Error(t, r.Execute([]string{"echo", "--unknown"}))

	require.NoError(t, r.Execute([]string{"echo", "a", "b"}))
	assert.Equal(t, []string{"a", "b"}, got)

	assert.Equal(t, []string{"echo", "fail"}, r.Names())
	assert.Equal(t, []string{"echo: print arguments", "fail: always fails"}, r.Help())
}
