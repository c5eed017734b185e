// Package shuffle provides the randomized and reproducible orderings used to
// build question sequences.
package shuffle

import (
	"math/rand/v2"
	"time"
)

// Park-Miller minimal standard generator constants.
const (
	multiplier = 16807
	modulus    = 2147483647
)

// Shuffle returns a Fisher-Yates permutation of items using a
// non-reproducible source. The input is not modified.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SeededRandom returns a generator of floats in [0, 1) whose sequence is
// fully determined by seed. Seeds outside [1, 2147483646] are folded into
// that range so the multiplicative recurrence never collapses to zero.
func SeededRandom(seed int64) func() float64 {
	s := normalizeSeed(seed)
	return func() float64 {
		s = (s * multiplier) % modulus
		return float64(s-1) / float64(modulus-1)
	}
}

func normalizeSeed(seed int64) int64 {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	if s == 0 {
		s = modulus - 1
	}
	return s
}

// SeededShuffle is Shuffle driven by SeededRandom(seed). The same seed and
// input order always produce the same output order.
func SeededShuffle[T any](items []T, seed int64) []T {
	out := make([]T, len(items))
	copy(out, items)
	rng := SeededRandom(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(rng() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// DateSeed derives a seed from the calendar date of t in t's location,
// ignoring the time of day.
func DateSeed(t time.Time) int64 {
	y, m, d := t.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// TodaySeed is DateSeed for the local calendar date.
func TodaySeed() int64 {
	return DateSeed(time.Now())
}

// Pick returns a uniformly random element of items. It panics on an
// empty slice, like rand.IntN.
func Pick[T any](items []T) T {
	return items[rand.IntN(len(items))]
}
