package main

import "sync"

// Entity is anything the simulation draws each frame.
type Entity interface {
	Render(Surface)
}

// Stats is a snapshot of the simulation population.
type Stats struct {
	Shells           int
	Fragments        int
	Bursts           uint64
	EvictedShells    uint64
	EvictedFragments uint64
}

// Simulation owns the live shells and fragments. It is the only place they
// are moved, aged or removed. All methods are safe for concurrent use.
type Simulation struct {
	mu        sync.Mutex
	shells    []*Shell
	fragments []*Fragment
	factory   *BurstFactory

	maxShells    int // 0 means unbounded
	maxFragments int

	bursts           uint64
	evictedShells    uint64
	evictedFragments uint64
}

// NewSimulation creates an empty simulation. When a collection grows past
// its limit the oldest entities are dropped first.
func NewSimulation(factory *BurstFactory, maxShells, maxFragments int) *Simulation {
	return &Simulation{
		factory:      factory,
		maxShells:    maxShells,
		maxFragments: maxFragments,
	}
}

func (s *Simulation) AddShell(sh *Shell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shells = append(s.shells, sh)
	s.trim()
}

func (s *Simulation) AddFragments(frags []*Fragment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fragments = append(s.fragments, frags...)
	s.trim()
}

// Tick advances every shell, then every fragment, by one step.
func (s *Simulation) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickShells()
	s.tickFragments()
}

// Step runs one frame against surface: shells are drawn then ticked, then
// fragments are drawn then ticked. Entities are always drawn at their
// position before the update. Nothing can be added in between.
func (s *Simulation) Step(surface Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	renderAll(surface, s.shells)
	s.tickShells()
	renderAll(surface, s.fragments)
	s.tickFragments()
}

func (s *Simulation) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Shells:           len(s.shells),
		Fragments:        len(s.fragments),
		Bursts:           s.bursts,
		EvictedShells:    s.evictedShells,
		EvictedFragments: s.evictedFragments,
	}
}

// tickShells bursts shells that reached their target and keeps the rest.
// Filtering into a retained prefix visits each shell exactly once.
func (s *Simulation) tickShells() {
	kept := s.shells[:0]
	for _, sh := range s.shells {
		ev, done := sh.Tick()
		if !done {
			kept = append(kept, sh)
			continue
		}
		s.bursts++
		s.fragments = append(s.fragments, s.factory.Explode(ev.X, ev.Y, ev.Color)...)
	}
	clear(s.shells[len(kept):])
	s.shells = kept
	s.trim()
}

func (s *Simulation) tickFragments() {
	kept := s.fragments[:0]
	for _, f := range s.fragments {
		f.Tick()
		if !f.Done() {
			kept = append(kept, f)
		}
	}
	clear(s.fragments[len(kept):])
	s.fragments = kept
}

func (s *Simulation) trim() {
	var n int
	s.shells, n = evictOldest(s.shells, s.maxShells)
	s.evictedShells += uint64(n)
	s.fragments, n = evictOldest(s.fragments, s.maxFragments)
	s.evictedFragments += uint64(n)
}

// evictOldest drops entries from the front of items until it fits limit.
func evictOldest[T any](items []*T, limit int) ([]*T, int) {
	n := len(items) - limit
	if limit <= 0 || n <= 0 {
		return items, 0
	}
	kept := append(items[:0], items[n:]...)
	clear(items[len(kept):])
	return kept, n
}

func renderAll[E Entity](surface Surface, entities []E) {
	for _, e := range entities {
		e.Render(surface)
	}
}
