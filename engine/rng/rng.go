// Package rng provides the injected random source used by every generator
// and dice roll in the engine. Nothing in the engine touches a global source.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// countingSource counts every draw from the underlying source so the exact
// stream position can be saved and restored.
type countingSource struct {
	src rand.Source
	n   int64
}

func (c *countingSource) Int63() int64 {
	c.n++
	return c.src.Int63()
}

func (c *countingSource) Seed(seed int64) {
	c.src.Seed(seed)
	c.n = 0
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position increments with every draw from the source, enabling save/restore.
type RNG struct {
	seed int64
	cs   *countingSource
	src  *rand.Rand
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	cs := &countingSource{src: rand.NewSource(seed)}
	return &RNG{
		seed: seed,
		cs:   cs,
		src:  rand.New(cs),
	}
}

// NewSeed generates a random seed using crypto/rand, for production games.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Roll returns a random integer in [1, sides].
func (r *RNG) Roll(sides int) int {
	return r.src.Intn(sides) + 1
}

// RollD6 rolls n six-sided dice and adds modifier.
func (r *RNG) RollD6(n, modifier int) int {
	total := modifier
	for i := 0; i < n; i++ {
		total += r.Roll(6)
	}
	return total
}

// Intn returns a random integer in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	return r.src.Intn(n)
}

// Between returns a random integer in [lo, hi]. If hi < lo, lo is returned.
func (r *RNG) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.src.Intn(hi-lo+1)
}

// Percent returns a uniform draw in [0, 100].
func (r *RNG) Percent() int {
	return r.src.Intn(101)
}

// Chance reports whether a fresh percentage draw lands at or under pct.
func (r *RNG) Chance(pct int) bool {
	return r.Percent() <= pct
}

// Float returns a random float64 in [lo, hi).
func (r *RNG) Float(lo, hi float64) float64 {
	return lo + r.src.Float64()*(hi-lo)
}

// WeightedSelect returns an index chosen by weighted random selection.
// weights must be non-empty with all positive values.
func (r *RNG) WeightedSelect(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := r.src.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Read fills p with random bytes. It makes RNG an io.Reader so that uuid
// generation draws from the same deterministic stream.
func (r *RNG) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 7 {
		v := r.src.Int63()
		for j := 0; j < 7 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// NewID returns a version 4 UUID drawn from the RNG.
func (r *RNG) NewID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		// Read never fails.
		panic(fmt.Sprintf("rng: new id: %v", err))
	}
	return id
}

// Position returns the number of source draws made since creation.
func (r *RNG) Position() int64 {
	return r.cs.n
}

// RestoreRNG creates an RNG and advances it to the given position.
// This reproduces the exact RNG state for save/load.
func RestoreRNG(seed int64, position int64) *RNG {
	r := NewRNG(seed)
	for i := int64(0); i < position; i++ {
		r.cs.Int63()
	}
	return r
}

// Pick returns a uniformly chosen element of items. items must be non-empty.
func Pick[T any](r *RNG, items []T) T {
	return items[r.Intn(len(items))]
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](r *RNG, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	r.src.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
