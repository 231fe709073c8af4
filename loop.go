package main

import (
	"context"
	"errors"
	"image/color"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNoSurface    = errors.New("no drawing surface")
	ErrNoSimulation = errors.New("no simulation")
)

// Trail fade painted over the whole surface each frame, rgba(0,0,0,0.15).
var fadeColor = color.NRGBA{R: 0, G: 0, B: 0, A: 38}

// statsEvery is how many frames pass between population log lines.
const statsEvery = 600

// Presenter is implemented by surfaces that buffer a frame and need an
// explicit flush once it is complete.
type Presenter interface {
	Present()
}

type loopState int

const (
	loopIdle loopState = iota
	loopRunning
)

// RenderLoop draws one frame of the display each time it is driven.
// Hosts with a refresh callback call Frame from it; other hosts use Run.
type RenderLoop struct {
	sim      *Simulation
	surface  Surface
	backdrop *Backdrop // optional
	log      *zap.Logger

	mu     sync.Mutex
	state  loopState
	stop   chan struct{}
	frames uint64
}

// NewRenderLoop returns an idle loop. A missing surface or simulation is
// an error and nothing is set up.
func NewRenderLoop(sim *Simulation, surface Surface, backdrop *Backdrop, log *zap.Logger) (*RenderLoop, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if sim == nil {
		return nil, ErrNoSimulation
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RenderLoop{
		sim:      sim,
		surface:  surface,
		backdrop: backdrop,
		log:      log,
	}, nil
}

// Start moves the loop to running. Calling it while running does nothing.
func (l *RenderLoop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == loopRunning {
		return
	}
	l.state = loopRunning
	l.stop = make(chan struct{})
	l.log.Info("render loop started")
}

// Stop returns the loop to idle and releases Run.
func (l *RenderLoop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != loopRunning {
		return
	}
	l.state = loopIdle
	close(l.stop)
	l.log.Info("render loop stopped", zap.Uint64("frames", l.frames))
}

func (l *RenderLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state == loopRunning
}

// Frame draws and advances one frame. It reports false, doing nothing,
// when the loop is idle.
func (l *RenderLoop) Frame() bool {
	l.mu.Lock()
	if l.state != loopRunning {
		l.mu.Unlock()
		return false
	}
	l.frames++
	frame := l.frames
	l.mu.Unlock()

	w, h := l.surface.Size()
	l.surface.ClearRect(0, 0, w, h)
	l.surface.FillRect(0, 0, w, h, fadeColor)
	if l.backdrop != nil {
		l.backdrop.Render(l.surface, frame)
	}
	l.sim.Step(l.surface)
	if p, ok := l.surface.(Presenter); ok {
		p.Present()
	}

	if frame%statsEvery == 0 {
		st := l.sim.Stats()
		l.log.Debug("population",
			zap.Uint64("frame", frame),
			zap.Int("shells", st.Shells),
			zap.Int("fragments", st.Fragments),
			zap.Uint64("bursts", st.Bursts),
			zap.Uint64("evicted_shells", st.EvictedShells),
			zap.Uint64("evicted_fragments", st.EvictedFragments))
	}
	return true
}

// Run starts the loop and draws a frame every interval until ctx is done
// or Stop is called.
func (l *RenderLoop) Run(ctx context.Context, interval time.Duration) error {
	l.Start()
	l.mu.Lock()
	stop := l.stop
	l.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return nil
		case <-stop:
			return nil
		case <-ticker.C:
			l.Frame()
		}
	}
}
