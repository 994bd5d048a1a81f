package app

import "sync"

// State holds the two virtual buttons. Every access goes through the lock;
// the event loop is the only writer and the draw callback the only reader.
type State struct {
	mu sync.Locker

	rightClickActive bool
	leftClickActive  bool
}

func newState(mu sync.Locker) *State {
	return &State{mu: mu}
}

func (s *State) Lock()   { s.mu.Lock() }
func (s *State) Unlock() { s.mu.Unlock() }

// Snapshot returns both buttons read under the lock.
func (s *State) Snapshot() (right, left bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rightClickActive, s.leftClickActive
}
