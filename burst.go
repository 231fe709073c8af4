package main

import "math"

// Burst sizes
const (
	BurstMinFragments  = 30
	BurstFragmentRange = 60
	ConfettiFragments  = 20
)

// BurstFactory turns bursts into fragments.
type BurstFactory struct {
	rng *Random
}

func NewBurstFactory(r *Random) *BurstFactory {
	return &BurstFactory{rng: r}
}

// Explode returns between 30 and 89 fragments of color c centred on (x, y).
func (b *BurstFactory) Explode(x, y float64, c Color) []*Fragment {
	count := BurstMinFragments + int(math.Floor(b.rng.Uniform(0, BurstFragmentRange)))
	frags := make([]*Fragment, count)
	for i := range frags {
		frags[i] = NewFragment(b.rng, x, y, c)
	}
	return frags
}

// Confetti returns n fragments at (x, y), each with its own random colour.
func (b *BurstFactory) Confetti(x, y float64, n int) []*Fragment {
	frags := make([]*Fragment, n)
	for i := range frags {
		frags[i] = NewFragment(b.rng, x, y, RandomColor(b.rng))
	}
	return frags
}
