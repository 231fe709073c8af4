package main

import "math"

// Shell constants
const (
	ShellMinSpeed    = 3.0
	ShellMaxSpeed    = 6.0
	ShellDrag        = 0.995 // velocity multiplier per tick
	ShellBurstRadius = 8.0   // distance to target that triggers the burst
	ShellRadius      = 2.5
)

// Shell is a projectile rising from a launch point toward its target.
type Shell struct {
	X, Y     float64 // Position
	TX, TY   float64 // Target
	VX, VY   float64 // Velocity
	Color    Color
	Traveled float64 // Accumulated launch speed, informational only

	speed float64 // launch speed
}

// BurstEvent is emitted by a shell the tick it reaches its target.
type BurstEvent struct {
	X, Y  float64
	Color Color
}

// NewShell aims a shell from (x, y) at (tx, ty) with a random launch speed.
// A nil color picks a random hue.
func NewShell(r *Random, x, y, tx, ty float64, c *Color) *Shell {
	col := RandomColor(r)
	if c != nil {
		col = *c
	}
	speed := r.Uniform(ShellMinSpeed, ShellMaxSpeed)
	angle := math.Atan2(ty-y, tx-x)
	return &Shell{
		X:     x,
		Y:     y,
		TX:    tx,
		TY:    ty,
		VX:    math.Cos(angle) * speed,
		VY:    math.Sin(angle) * speed,
		Color: col,
		speed: speed,
	}
}

// Tick moves the shell one step and applies drag. It reports a burst, and
// that the shell is finished, once it is within ShellBurstRadius of its target.
func (s *Shell) Tick() (BurstEvent, bool) {
	s.X += s.VX
	s.Y += s.VY
	s.Traveled += s.speed
	s.VX *= ShellDrag
	s.VY *= ShellDrag

	if s.Distance() < ShellBurstRadius {
		return BurstEvent{X: s.TX, Y: s.TY, Color: s.Color}, true
	}
	return BurstEvent{}, false
}

// Distance returns the distance from the current position to the target.
func (s *Shell) Distance() float64 {
	return math.Hypot(s.X-s.TX, s.Y-s.TY)
}

// Speed returns the current speed.
func (s *Shell) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}

// LaunchSpeed returns the speed the shell was fired with.
func (s *Shell) LaunchSpeed() float64 {
	return s.speed
}

func (s *Shell) Render(surface Surface) {
	surface.FillCircle(s.X, s.Y, ShellRadius, s.Color, 1)
}
