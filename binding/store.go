package binding

import (
	"sync"

	"histpad/history"
)

// Store associates at most one History with each element. Implementations
// must keep access race-free if the host ever dispatches events from more
// than one goroutine.
type Store interface {
	Get(el Element) (*history.History, bool)
	Set(el Element, h *history.History)
}

// MapStore is the default Store, a mutex-guarded map keyed by element.
type MapStore struct {
	mu sync.Mutex
	m  map[Element]*history.History
}

func NewMapStore() *MapStore {
	return &MapStore{m: map[Element]*history.History{}}
}

func (s *MapStore) Get(el Element) (*history.History, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.m[el]
	return h, ok
}

func (s *MapStore) Set(el Element, h *history.History) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[el] = h
}
