package menu

import "sync/atomic"

// Store holds the menu currently being served and lets it be replaced
// while requests are in flight.
type Store struct {
	current atomic.Pointer[Builder]
}

// NewStore returns a store serving b. A nil b serves an empty menu.
func NewStore(b *Builder) *Store {
	s := &Store{}
	s.Swap(b)
	return s
}

// Load returns the current menu.
func (s *Store) Load() *Builder {
	if b := s.current.Load(); b != nil {
		return b
	}
	return New()
}

// Swap replaces the current menu and returns the previous one.
func (s *Store) Swap(b *Builder) *Builder {
	if b == nil {
		b = New()
	}
	return s.current.Swap(b)
}
