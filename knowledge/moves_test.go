package knowledge

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSafeMove(t *testing.T) {
	a := newAgent(t, 3, 3)
	_, ok := a.MakeSafeMove()
	assert.False(t, ok, "nothing is known yet")

	require.NoError(t, a.IntegrateEvidence(Cell{1, 1}, 0))
	c, ok := a.MakeSafeMove()
	require.True(t, ok)
	assert.Equal(t, Cell{0, 0}, c)

	// Pure query: asking again gives the same answer and changes nothing.
	stats := a.Stats
	c2, ok := a.MakeSafeMove()
	require.True(t, ok)
	assert.Equal(t, c, c2)
	assert.Equal(t, stats, a.Stats)
	assert.Len(t, a.MovesMade(), 1)
}

func TestMakeRandomMove(t *testing.T) {
	a := newAgent(t, 2, 2)
	require.NoError(t, a.MarkMine(Cell{1, 1}))
	require.NoError(t, a.IntegrateEvidence(Cell{0, 0}, 1))
	seen := make(map[Cell]int)
	for i := 0; i < 200; i++ {
		c, ok := a.MakeRandomMove()
		require.True(t, ok)
		seen[c]++
	}
	assert.Len(t, seen, 2, "only (0,1) and (1,0) can be chosen, got %v", seen)
	assert.Zero(t, seen[Cell{0, 0}])
	assert.Zero(t, seen[Cell{1, 1}])
	assert.Greater(t, seen[Cell{0, 1}], 50)
	assert.Greater(t, seen[Cell{1, 0}], 50)
}

func TestMakeRandomMoveIsReproducible(t *testing.T) {
	draw := func() []Cell {
		a, err := New(6, 6, WithRand(rand.New(rand.NewPCG(42, 7))))
		require.NoError(t, err)
		res := make([]Cell, 10)
		for i := range res {
			c, ok := a.MakeRandomMove()
			require.True(t, ok)
			res[i] = c
		}
		return res
	}
	assert.Equal(t, draw(), draw())
}

func TestMakeRandomMoveNoneLeft(t *testing.T) {
	a := newAgent(t, 1, 2)
	require.NoError(t, a.IntegrateEvidence(Cell{0, 0}, 1))
	assert.True(t, a.IsMine(Cell{0, 1}))
	_, ok := a.MakeRandomMove()
	assert.False(t, ok)
	_, ok = a.MakeSafeMove()
	assert.False(t, ok)
}

func TestGridAccessors(t *testing.T) {
	a := newAgent(t, 2, 3)
	assert.Equal(t, 2, a.Height())
	assert.Equal(t, 3, a.Width())
	assert.True(t, a.InBounds(Cell{1, 2}))
	assert.False(t, a.InBounds(Cell{2, 0}))
	assert.False(t, a.InBounds(Cell{0, -1}))
	assert.Equal(t, []Cell{{0, 1}, {1, 0}, {1, 1}}, a.Neighbors(Cell{0, 0}))
	assert.Len(t, a.Neighbors(Cell{0, 1}), 5)
}
