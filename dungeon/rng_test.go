package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFromString(t *testing.T) {
	assert.Equal(t, SeedFromString("cellar-door"), SeedFromString("cellar-door"))
	assert.NotEqual(t, SeedFromString("cellar-door"), SeedFromString("cellar-floor"))

	// FNV-1a of the empty string is the offset basis.
	assert.Equal(t, int64(-3750763034362895579), SeedFromString(""))
}

func TestRandInt_IsInclusive(t *testing.T) {
	g := New(testRNG())
	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		v := g.randInt(1, 3)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 3, "both ends of the range come up")
}

func TestRandFloat_HalfOpenRange(t *testing.T) {
	g := New(testRNG())
	for i := 0; i < 300; i++ {
		v := g.randFloat(2, 5)
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 5.0)
	}
}

func TestShuffledDirections_IsPermutation(t *testing.T) {
	g := New(testRNG())
	for i := 0; i < 50; i++ {
		dirs := g.shuffledDirections()
		seen := map[Direction]bool{}
		for _, d := range dirs {
			seen[d] = true
		}
		assert.Len(t, seen, 4)
	}
}

func TestPick_CoversChoices(t *testing.T) {
	g := New(testRNG())
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[g.pick("a", "b", "c")] = true
	}
	assert.Len(t, seen, 3)
}
