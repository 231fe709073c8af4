package main

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestScheduler(seed int64, w, h float64, interval time.Duration) (*SpawnScheduler, *Simulation, *Viewport) {
	r := NewRandom(seed)
	factory := NewBurstFactory(r)
	sim := NewSimulation(factory, 0, 0)
	vp := NewViewport(w, h)
	return NewSpawnScheduler(sim, factory, r, vp, interval, zap.NewNop()), sim, vp
}

func TestSpawnScheduler_ClickSpawnsShellAndConfetti(t *testing.T) {
	s, sim, _ := newTestScheduler(1, 800, 600, time.Hour)

	sh := s.Click(200, 300)

	st := sim.Stats()
	if st.Shells != 1 || st.Fragments != ConfettiFragments {
		t.Fatalf("stats %+v, want 1 shell and %d fragments", st, ConfettiFragments)
	}
	if sim.shells[0] != sh || sh.TX != 200 || sh.TY != 300 {
		t.Errorf("shell targets (%v,%v), want (200,300)", sh.TX, sh.TY)
	}
	if sh.Y != 600 || sh.X < LaunchMargin || sh.X >= 800-LaunchMargin {
		t.Errorf("shell launched from (%v,%v)", sh.X, sh.Y)
	}
	for _, f := range sim.fragments {
		if f.X != 200 || f.Y != 300 || f.Age != 0 {
			t.Fatalf("confetti fragment %+v not at the click", f)
		}
	}
}

func TestSpawnScheduler_LaunchBounds(t *testing.T) {
	s, _, _ := newTestScheduler(2, 800, 600, time.Hour)
	for i := 0; i < 500; i++ {
		sh := s.Launch()
		if sh.Y != 600 || sh.X < 50 || sh.X >= 750 {
			t.Fatalf("origin (%v,%v) outside the bottom edge window", sh.X, sh.Y)
		}
		if sh.TX < 100 || sh.TX >= 700 || sh.TY < 80 || sh.TY >= 300 {
			t.Fatalf("target (%v,%v) outside the upper half window", sh.TX, sh.TY)
		}
	}
}

func TestSpawnScheduler_FollowsViewport(t *testing.T) {
	s, _, vp := newTestScheduler(3, 800, 600, time.Hour)
	vp.Set(400, 200)
	sh := s.Launch()
	if sh.Y != 200 || sh.X >= 350 || sh.TY >= 100 {
		t.Errorf("shell (%v,%v)->(%v,%v) ignores the resized viewport", sh.X, sh.Y, sh.TX, sh.TY)
	}
}

func TestSpawnScheduler_Periodic(t *testing.T) {
	s, sim, _ := newTestScheduler(4, 800, 600, 2*time.Millisecond)
	s.Start(context.Background())
	s.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for sim.Stats().Shells < 3 {
		if time.Now().After(deadline) {
			t.Fatal("scheduler launched no shells")
		}
		time.Sleep(time.Millisecond)
	}
	s.Stop()

	n := sim.Stats().Shells
	time.Sleep(20 * time.Millisecond)
	if got := sim.Stats().Shells; got != n {
		t.Errorf("shells grew from %d to %d after Stop", n, got)
	}
	s.Stop()
}

func TestSpawnScheduler_StopsWithContext(t *testing.T) {
	s, sim, _ := newTestScheduler(5, 800, 600, 2*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()
	time.Sleep(10 * time.Millisecond)
	n := sim.Stats().Shells
	time.Sleep(20 * time.Millisecond)
	if got := sim.Stats().Shells; got != n {
		t.Errorf("shells grew from %d to %d after cancel", n, got)
	}
	s.Stop()
}
