// Package random holds the engine's process-wide default pseudo-random
// generator.
//
// The default generator is global and unsynchronized, like the generator it
// stands in for: seeding or drawing from several goroutines at once races.
// Code that needs concurrent streams should create its own Generator.
package random

import (
	crand "crypto/rand"
	"encoding/binary"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSeed seeds the default generator until ManualSeed or Seed is called.
const DefaultSeed uint64 = 67280421310721

// Generator is a seedable PCG stream. It is not safe for concurrent use.
type Generator struct {
	src         *rand.PCGSource
	rng         *rand.Rand
	initialSeed uint64
}

// New returns a Generator seeded with seed.
func New(seed uint64) *Generator {
	src := &rand.PCGSource{}
	src.Seed(seed)
	return &Generator{
		src:         src,
		rng:         rand.New(src),
		initialSeed: seed,
	}
}

// ManualSeed resets the stream to the state derived from seed. Negative
// seeds are reinterpreted as their two's complement uint64.
func (g *Generator) ManualSeed(seed int64) {
	g.initialSeed = uint64(seed)
	g.src.Seed(g.initialSeed)
}

// Seed reseeds from the operating system's entropy source and returns the
// seed used.
func (g *Generator) Seed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand does not fail on supported platforms; keep the
		// previous stream rather than seeding with zeros.
		return g.initialSeed
	}
	seed := binary.LittleEndian.Uint64(buf[:])
	g.initialSeed = seed
	g.src.Seed(seed)
	return seed
}

// InitialSeed returns the seed the current stream was started from.
func (g *Generator) InitialSeed() uint64 {
	return g.initialSeed
}

// Uint64 draws 64 uniformly distributed bits.
func (g *Generator) Uint64() uint64 {
	return g.rng.Uint64()
}

// Float64 draws from [0, 1).
func (g *Generator) Float64() float64 {
	return g.rng.Float64()
}

// Uniform draws from [lo, hi).
func (g *Generator) Uniform(lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: g.src}.Rand()
}

// Normal draws from a normal distribution with mean mu and standard
// deviation sigma.
func (g *Generator) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: g.src}.Rand()
}

var defaultGenerator = New(DefaultSeed)

// Default returns the process-wide default generator.
func Default() *Generator {
	return defaultGenerator
}

// ManualSeed seeds the default generator.
func ManualSeed(seed int64) {
	defaultGenerator.ManualSeed(seed)
}

// Seed reseeds the default generator nondeterministically and returns the seed.
func Seed() uint64 {
	return defaultGenerator.Seed()
}

// InitialSeed returns the default generator's current seed.
func InitialSeed() uint64 {
	return defaultGenerator.InitialSeed()
}
