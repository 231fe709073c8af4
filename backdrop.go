package main

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
)

// Backdrop constants
const (
	StarSize     = 1.5
	StarMinAlpha = 0.15
	StarMaxAlpha = 0.75

	noiseAlpha = 2.0
	noiseBeta  = 2.0
	noiseOct   = 3
)

type star struct {
	fx, fy float64 // position as a fraction of the surface
}

// Backdrop is a faint star field drawn under the fireworks. Each star
// twinkles along its own row of Perlin noise.
type Backdrop struct {
	stars   []star
	twinkle float64
	noise   *perlin.Perlin
}

// NewBackdrop scatters n stars over the upper two thirds of the sky.
func NewBackdrop(r *Random, n int, twinkle float64, seed int64) *Backdrop {
	b := &Backdrop{
		stars:   make([]star, n),
		twinkle: twinkle,
		noise:   perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOct, seed),
	}
	for i := range b.stars {
		b.stars[i] = star{fx: r.Uniform(0, 1), fy: r.Uniform(0, 2.0/3.0)}
	}
	return b
}

// Brightness returns the alpha of star i at the given frame.
func (b *Backdrop) Brightness(i int, frame uint64) float64 {
	n := b.noise.Noise2D(float64(i)*0.37, float64(frame)*b.twinkle)
	t := math.Max(0, math.Min(1, (n+1)/2))
	return StarMinAlpha + t*(StarMaxAlpha-StarMinAlpha)
}

func (b *Backdrop) Render(surface Surface, frame uint64) {
	w, h := surface.Size()
	for i, s := range b.stars {
		a := uint8(math.Round(b.Brightness(i, frame) * 255))
		surface.FillRect(s.fx*w, s.fy*h, StarSize, StarSize, color.NRGBA{R: 255, G: 255, B: 255, A: a})
	}
}
