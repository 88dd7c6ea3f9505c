// Package generate builds entities from prototypes. A prototype is plain
// configuration; its Generate method draws every random choice, ids
// included, from the RNG it is handed, so a seed reproduces a world.
package generate

import (
	"strings"

	"github.com/nathoo/underworld/engine/rng"
	"github.com/nathoo/underworld/types"
)

// Generator produces a T from a random source.
type Generator[T any] interface {
	Generate(r *rng.RNG) T
}

// Func adapts a plain function to Generator.
type Func[T any] func(r *rng.RNG) T

// Generate calls f.
func (f Func[T]) Generate(r *rng.RNG) T { return f(r) }

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

// Roll draws a value in [Min, Max].
func (rg Range) Roll(r *rng.RNG) int {
	return r.Between(rg.Min, rg.Max)
}

// IsZero reports whether the range was left unset.
func (rg Range) IsZero() bool {
	return rg.Min == 0 && rg.Max == 0
}

// chance rolls a percentage threshold. A threshold of zero never fires.
func chance(r *rng.RNG, pct int) bool {
	return pct > 0 && r.Chance(pct)
}

// pickN returns up to n distinct elements of items in random order.
func pickN[T any](r *rng.RNG, items []T, n int) []T {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	shuffled := rng.Shuffle(r, items)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// restrict keeps the elements of allowed that also appear in wanted. An
// empty wanted list keeps everything.
func restrict[T comparable](allowed, wanted []T) []T {
	if len(wanted) == 0 {
		return allowed
	}
	var out []T
	for _, a := range allowed {
		for _, w := range wanted {
			if a == w {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// article picks "a" or "an" for the word that follows it.
func article(word string) types.GroupDescriptor {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return types.GroupAn
	}
	return types.GroupA
}
