package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/crillab/sweeper/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SWEEPER_LOG_LEVEL", "error")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDeduce(t *testing.T) {
	out, err := run(t, "deduce", "boards/corner.txt",
		"--reveal", "0,0", "--reveal", "0,1", "--reveal", "1,0", "--reveal", "1,1")
	require.NoError(t, err)
	assert.Contains(t, out, "mines: (2,2)\n")
	assert.Contains(t, out, "safes: (0,0) (0,1) (0,2) (1,0) (1,1) (1,2) (2,0) (2,1)\n")
	assert.Contains(t, out, "missed: \n")
}

func TestDeduceOPB(t *testing.T) {
	out, err := run(t, "deduce", "boards/corner.txt", "--reveal", "0,0", "--opb")
	require.NoError(t, err)
	assert.Contains(t, out, "* #variable= 9")
	assert.Contains(t, out, "+1 ~x1 >= 1 ;")
}

func TestDeduceErrors(t *testing.T) {
	_, err := run(t, "deduce", "boards/corner.txt", "--reveal", "2,2")
	assert.ErrorContains(t, err, "is a mine")
	_, err = run(t, "deduce", "boards/corner.txt", "--reveal", "0,0", "--reveal", "0,0")
	assert.ErrorIs(t, err, knowledge.ErrAlreadyMoved)
	_, err = run(t, "deduce", "boards/corner.txt", "--reveal", "9,9")
	assert.ErrorIs(t, err, knowledge.ErrOutOfBounds)
	_, err = run(t, "deduce", "boards/missing.txt")
	assert.Error(t, err)
}

func TestPlay(t *testing.T) {
	t.Setenv("SWEEPER_SEED", "3")
	out, err := run(t, "play", "boards/beginner.txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "c playing boards/beginner.txt (8x8, 8 mines)\n"), "got %q", out)
	assert.True(t, strings.Contains(out, "\nWON\n") || strings.Contains(out, "\nLOST\n"), "no outcome in %q", out)
	assert.Contains(t, out, "c nb guesses: ")
}

func TestPlayFromConfig(t *testing.T) {
	t.Setenv("SWEEPER_BOARD", "boards/corner.txt")
	out, err := run(t, "play")
	require.NoError(t, err)
	assert.Contains(t, out, "c playing boards/corner.txt")
}

func TestPlayNoBoard(t *testing.T) {
	_, err := run(t, "play")
	assert.ErrorContains(t, err, "no board given")
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in   string
		want knowledge.Cell
		ok   bool
	}{
		{"0,0", knowledge.Cell{Row: 0, Col: 0}, true},
		{"2, 3", knowledge.Cell{Row: 2, Col: 3}, true},
		{"1", knowledge.Cell{}, false},
		{"a,1", knowledge.Cell{}, false},
		{"1,b", knowledge.Cell{}, false},
		{"1,2,3", knowledge.Cell{}, false},
	}
	for _, test := range tests {
		got, err := parseCell(test.in)
		if test.ok {
			require.NoError(t, err, test.in)
			assert.Equal(t, test.want, got)
		} else {
			assert.Error(t, err, test.in)
		}
	}
}
