// RNG utilities for the evolutionary trainer.
//
// This file centralizes deterministic random generation for initialization,
// selection, and crossover.
//
// Goals:
//   - Determinism: same seed => identical generations across platforms.
//   - Encapsulation: a single RNG lives on the main goroutine; workers never
//     touch it.
//   - Safety: no panics; only sentinel errors from types.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The fitness worker pool never
//     receives the trainer's *rand.Rand; evaluateAll's workers each clone
//     only the scorer's read-only weight matrices, never RNG state.
package trainer

import "math/rand"

// defaultRNGSeed is the fixed seed used when Options.Seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed==0 maps to
// defaultRNGSeed so a zero-value Options still yields reproducible runs.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a using
// rng. Used to permute instance and population indices for RKGA parent
// selection and Lexicase instance ordering.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a permutation of 0..n-1 generated deterministically
// from rng.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)
	return p
}

// produceRandomInteger maps a uniform [0,1) draw onto {0, ..., max-1},
// matching original_source/nnet.cpp's produce_random_integer: guards against
// the rval==1.0 edge case landing exactly on max.
func produceRandomInteger(max int, rval float64) int {
	n := int(float64(max) * rval)
	if n == max {
		n--
	}
	return n
}
