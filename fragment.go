package main

import "math"

// Fragment constants
const (
	FragmentMinLife   = 40.0
	FragmentMaxLife   = 90.0
	FragmentMinSpeed  = 1.0
	FragmentMaxSpeed  = 6.0
	FragmentGravity   = 0.06
	FragmentMaxRadius = 3.0
	FragmentMinRadius = 1.0
)

// Fragment is a decaying particle thrown out by a burst.
type Fragment struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity
	Color   Color
	Age     int     // Ticks lived
	Life    float64 // Age at which the fragment expires
	Gravity float64
}

// NewFragment creates a fragment at (x, y) moving in a random direction.
func NewFragment(r *Random, x, y float64, c Color) *Fragment {
	speed := r.Uniform(FragmentMinSpeed, FragmentMaxSpeed)
	angle := r.Angle()
	return &Fragment{
		X:       x,
		Y:       y,
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		Color:   c,
		Life:    r.Uniform(FragmentMinLife, FragmentMaxLife),
		Gravity: FragmentGravity,
	}
}

func (f *Fragment) Tick() {
	f.VY += f.Gravity
	f.X += f.VX
	f.Y += f.VY
	f.Age++
}

// Done reports whether the fragment has outlived its life.
func (f *Fragment) Done() bool {
	return float64(f.Age) > f.Life
}

// Alpha is the render opacity, 1 at birth falling to 0 at Age == Life.
func (f *Fragment) Alpha() float64 {
	a := 1 - float64(f.Age)/f.Life
	return math.Max(0, math.Min(1, a))
}

// Radius grows as the fragment fades.
func (f *Fragment) Radius() float64 {
	return math.Max(FragmentMinRadius, FragmentMaxRadius*(1-f.Alpha()))
}

func (f *Fragment) Render(surface Surface) {
	surface.FillCircle(f.X, f.Y, f.Radius(), f.Color, f.Alpha())
}
