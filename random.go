package main

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Random is the shared source for every randomized parameter of the display.
// It is safe for concurrent use.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a source seeded with seed, or with the wall clock when seed is 0.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value in [min, max).
func (r *Random) Uniform(min, max float64) float64 {
	r.mu.Lock()
	f := r.rng.Float64()
	r.mu.Unlock()
	return f*(max-min) + min
}

// Angle returns a direction in [0, 2π).
func (r *Random) Angle() float64 {
	return r.Uniform(0, 2*math.Pi)
}

// Hue returns an integer hue in [0, 360).
func (r *Random) Hue() int {
	return int(math.Floor(r.Uniform(0, 360)))
}
