// Package random produces the pseudo-random floating-point numbers
// served by the API. Values are spread across magnitude scales from
// 1e-10 to 1e10 and are symmetric in sign.
package random

import (
	"math"
	"math/rand/v2"
)

// Rand is the subset of a pseudo-random source consumed by the
// generator. *rand.Rand satisfies it, so tests can inject a seeded
// source.
type Rand interface {
	// Float64 returns a pseudo-random number in the half-open interval [0.0,1.0).
	Float64() float64
	// IntN returns a non-negative pseudo-random int in the half-open interval [0,n).
	IntN(n int) int
}

// processSource draws from the top-level math/rand/v2 functions, which
// are safe for concurrent use.
type processSource struct{}

func (processSource) Float64() float64 { return rand.Float64() }
func (processSource) IntN(n int) int   { return rand.IntN(n) }

// Generator produces random numbers with no configured range limits.
type Generator struct {
	rng Rand
}

// New returns a Generator backed by the process-wide random source.
func New() *Generator {
	return &Generator{rng: processSource{}}
}

// NewWithRand returns a Generator drawing from rng. The caller is
// responsible for rng being safe for concurrent use if the Generator
// is shared between goroutines.
func NewWithRand(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns one random number. A uniform sample in [0,1) is
// scaled by 10^e for an exponent e drawn uniformly from [-10,10],
// then negated with probability 0.5. The result is always finite and
// its magnitude is below 1e10.
func (g *Generator) Generate() float64 {
	u := g.rng.Float64()
	exponent := g.rng.IntN(21) - 10
	value := u * math.Pow(10, float64(exponent))

	if g.rng.Float64() < 0.5 {
		value = -value
	}
	return value
}
