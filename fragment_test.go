package main

import (
	"math"
	"testing"
)

func TestNewFragment_Ranges(t *testing.T) {
	r := NewRandom(11)
	for i := 0; i < 1000; i++ {
		f := NewFragment(r, 5, 6, Color{Hue: 1})
		if f.X != 5 || f.Y != 6 || f.Age != 0 {
			t.Fatalf("fragment starts at (%v,%v) age %d", f.X, f.Y, f.Age)
		}
		if f.Life < FragmentMinLife || f.Life >= FragmentMaxLife {
			t.Fatalf("life %v out of range", f.Life)
		}
		speed := math.Hypot(f.VX, f.VY)
		if speed < FragmentMinSpeed-1e-9 || speed >= FragmentMaxSpeed+1e-9 {
			t.Fatalf("speed %v out of range", speed)
		}
		if f.Gravity != FragmentGravity {
			t.Fatalf("gravity %v", f.Gravity)
		}
	}
}

func TestFragment_Tick(t *testing.T) {
	f := &Fragment{X: 0, Y: 0, VX: 1, VY: 0, Life: 50, Gravity: FragmentGravity}
	f.Tick()
	if f.VY != FragmentGravity || f.X != 1 || f.Y != FragmentGravity || f.Age != 1 {
		t.Errorf("after one tick: %+v", f)
	}
	f.Tick()
	if f.Age != 2 || math.Abs(f.VY-2*FragmentGravity) > 1e-12 {
		t.Errorf("after two ticks: %+v", f)
	}
}

func TestFragment_Done(t *testing.T) {
	tests := []struct {
		life     float64
		lastLive int
	}{
		{3, 3},
		{40.5, 40},
		{89.99, 89},
	}
	for _, tt := range tests {
		f := &Fragment{Life: tt.life}
		for f.Age < tt.lastLive {
			if f.Done() {
				t.Fatalf("life %v: done at age %d", tt.life, f.Age)
			}
			prev := f.Age
			f.Tick()
			if f.Age != prev+1 {
				t.Fatalf("age went %d -> %d", prev, f.Age)
			}
		}
		if f.Done() {
			t.Errorf("life %v: done at age %d", tt.life, f.Age)
		}
		f.Tick()
		if !f.Done() {
			t.Errorf("life %v: not done at age %d", tt.life, f.Age)
		}
	}
}

func TestFragment_AlphaFadesToZero(t *testing.T) {
	f := &Fragment{Life: 50}
	prev := f.Alpha()
	if prev != 1 {
		t.Fatalf("initial alpha %v, want 1", prev)
	}
	for f.Age < 50 {
		f.Tick()
		a := f.Alpha()
		if a > prev {
			t.Fatalf("alpha rose from %v to %v at age %d", prev, a, f.Age)
		}
		prev = a
	}
	if f.Alpha() != 0 {
		t.Errorf("alpha at age == life = %v, want 0", f.Alpha())
	}
	if f.Radius() != FragmentMaxRadius {
		t.Errorf("radius at age == life = %v, want %v", f.Radius(), FragmentMaxRadius)
	}
}

func TestFragment_RenderPassesOpacity(t *testing.T) {
	s := newRecordingSurface(100, 100)
	f := &Fragment{X: 1, Y: 2, Color: Color{Hue: 30}, Age: 25, Life: 50}
	f.Render(s)
	(&Shell{X: 3, Y: 4, Color: Color{Hue: 60}}).Render(s)

	if len(s.circles) != 2 {
		t.Fatalf("got %d circles, want 2", len(s.circles))
	}
	if got := s.circles[0]; got.Alpha != 0.5 || got.R != 1.5 {
		t.Errorf("fragment drawn with alpha %v radius %v, want 0.5 and 1.5", got.Alpha, got.R)
	}
	if got := s.circles[1]; got.Alpha != 1 {
		t.Errorf("shell drawn after fragment with alpha %v, want 1", got.Alpha)
	}
}
