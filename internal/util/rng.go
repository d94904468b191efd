package util

import (
	"math/rand"
	"time"
)

// Source is the randomness the game draws from. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// NewSeed returns a seed derived from the clock, never zero.
func NewSeed() int64 {
	seed := time.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}

// RangeInclusive draws uniformly from [lo, hi]. Bounds may be negative.
func RangeInclusive(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.Intn(hi-lo+1)
}
