package main

//go:generate mockgen -source=surface.go -destination=mock_surface_test.go -package=main

import (
	"image/color"
	"sync"
)

// Surface is the 2D drawing target the display renders into. Opacity is
// passed with every draw call; implementations must not carry it over from
// one call to the next.
type Surface interface {
	Size() (width, height float64)
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c Color, alpha float64)
}

// Viewport holds the current surface bounds. The host updates it on resize;
// the spawn scheduler reads it at spawn time.
type Viewport struct {
	mu            sync.RWMutex
	width, height float64
}

func NewViewport(width, height float64) *Viewport {
	return &Viewport{width: width, height: height}
}

// Set records new bounds. In-flight entities are unaffected.
func (v *Viewport) Set(width, height float64) {
	v.mu.Lock()
	v.width, v.height = width, height
	v.mu.Unlock()
}

func (v *Viewport) Size() (float64, float64) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width, v.height
}
