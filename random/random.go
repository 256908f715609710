// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random exposes Born's process-wide default generator.
//
// The default generator is not synchronized. Seed it once, then draw from
// a single goroutine, or create a Generator per goroutine.
//
// Example:
//
//	random.ManualSeed(42)
//	x := random.Default().Normal(0, 1)
package random

import "github.com/born-ml/bornffi/internal/random"

// Generator is a seedable pseudo-random stream.
type Generator = random.Generator

// DefaultSeed seeds the default generator before any explicit seeding.
const DefaultSeed = random.DefaultSeed

// New returns a Generator seeded with seed.
func New(seed uint64) *Generator {
	return random.New(seed)
}

// Default returns the process-wide default generator.
func Default() *Generator {
	return random.Default()
}

// ManualSeed seeds the default generator.
func ManualSeed(seed int64) {
	random.ManualSeed(seed)
}

// Seed reseeds the default generator from OS entropy and returns the seed.
func Seed() uint64 {
	return random.Seed()
}

// InitialSeed returns the seed of the default generator's current stream.
func InitialSeed() uint64 {
	return random.InitialSeed()
}
