package main

import (
	"math"

	"go.uber.org/zap"
)

// display wires the simulation to a surface. Both hosts build one.
type display struct {
	viewport *Viewport
	loop     *RenderLoop
	spawner  *SpawnScheduler
}

func newDisplay(cfg *Config, surface Surface, width, height float64, log *zap.Logger) (*display, error) {
	rng := NewRandom(cfg.Spawn.Seed)
	factory := NewBurstFactory(rng)
	sim := NewSimulation(factory, cfg.Limits.MaxShells, cfg.Limits.MaxFragments)

	var backdrop *Backdrop
	if cfg.Backdrop.Stars > 0 {
		backdrop = NewBackdrop(rng, cfg.Backdrop.Stars, cfg.Backdrop.Twinkle, int64(rng.Uniform(1, math.MaxInt32)))
	}

	loop, err := NewRenderLoop(sim, surface, backdrop, log)
	if err != nil {
		return nil, err
	}

	vp := NewViewport(width, height)
	return &display{
		viewport: vp,
		loop:     loop,
		spawner:  NewSpawnScheduler(sim, factory, rng, vp, cfg.Spawn.Interval, log),
	}, nil
}
