package dungeon

import (
	"hash/fnv"
	"math/rand"
)

// SeedFromString hashes a seed phrase into an int64 using FNV-1a, so
// string and numeric seeds address the same space.
func SeedFromString(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// Generator produces dungeons from a single PRNG stream. A generator
// is not safe for concurrent Generate calls; the stream must be
// consumed in order for a seed to reproduce its dungeon.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator drawing from rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded returns a generator seeded from a string.
func NewSeeded(seed string) *Generator {
	return New(rand.New(rand.NewSource(SeedFromString(seed))))
}

// randFloat returns a float64 in [min, max).
func (g *Generator) randFloat(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// randInt returns an int in [min, max], both ends inclusive.
func (g *Generator) randInt(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

// shuffledDirections returns the four directions in Fisher-Yates
// order.
func (g *Generator) shuffledDirections() [4]Direction {
	dirs := AllDirections
	for i := len(dirs) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

// pick returns one of the choices uniformly.
func (g *Generator) pick(choices ...string) string {
	return choices[g.rng.Intn(len(choices))]
}
