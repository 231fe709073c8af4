package main

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Launch window, relative to the surface edges.
const (
	LaunchMargin    = 50.0  // origin x is kept this far from the sides
	TargetMargin    = 100.0 // target x is kept this far from the sides
	TargetMinHeight = 80.0  // highest target row, from the top
)

// SpawnScheduler feeds new shells into the simulation, periodically and on
// pointer input. It reads the surface bounds from the viewport at spawn time.
type SpawnScheduler struct {
	sim      *Simulation
	factory  *BurstFactory
	rng      *Random
	viewport *Viewport
	interval time.Duration
	log      *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSpawnScheduler(sim *Simulation, factory *BurstFactory, r *Random, vp *Viewport, interval time.Duration, log *zap.Logger) *SpawnScheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SpawnScheduler{
		sim:      sim,
		factory:  factory,
		rng:      r,
		viewport: vp,
		interval: interval,
		log:      log,
	}
}

// Start launches a shell every interval until ctx is done or Stop is called.
// Calling Start while already started does nothing.
func (s *SpawnScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.run(ctx)
	s.log.Info("spawn scheduler started", zap.Duration("interval", s.interval))
}

// Stop halts periodic spawning and waits for the timer goroutine to exit.
func (s *SpawnScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
	s.log.Info("spawn scheduler stopped")
}

func (s *SpawnScheduler) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Launch()
		}
	}
}

// Launch fires one shell from the bottom edge toward the upper half.
func (s *SpawnScheduler) Launch() *Shell {
	w, h := s.viewport.Size()
	x, y := s.origin()
	tx := s.rng.Uniform(TargetMargin, w-TargetMargin)
	ty := s.rng.Uniform(TargetMinHeight, h/2)
	sh := NewShell(s.rng, x, y, tx, ty, nil)
	s.sim.AddShell(sh)
	return sh
}

// Click fires a shell at (x, y) and throws a handful of confetti there at once.
func (s *SpawnScheduler) Click(x, y float64) *Shell {
	ox, oy := s.origin()
	sh := NewShell(s.rng, ox, oy, x, y, nil)
	s.sim.AddShell(sh)
	s.sim.AddFragments(s.factory.Confetti(x, y, ConfettiFragments))
	s.log.Debug("click", zap.Float64("x", x), zap.Float64("y", y), zap.Stringer("color", sh.Color))
	return sh
}

func (s *SpawnScheduler) origin() (float64, float64) {
	w, h := s.viewport.Size()
	return s.rng.Uniform(LaunchMargin, w-LaunchMargin), h
}
