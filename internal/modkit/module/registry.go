package module

import (
	"fmt"
	"sync"

	phttp "humanize/internal/platform/net/http"
)

// Set is an ordered collection of modules with unique names. Mount order follows Add order
type Set struct {
	mu     sync.RWMutex
	order  []Module
	byName map[string]Module
}

// NewSet returns a Set holding ms
func NewSet(ms ...Module) *Set {
	s := &Set{byName: make(map[string]Module, len(ms))}
	for _, m := range ms {
		s.Add(m)
	}
	return s
}

// Add appends m. Two modules with the same name cannot share a Set
func (s *Set) Add(m Module) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.byName[m.Name()]; dup {
		panic(fmt.Sprintf("module %q added twice", m.Name()))
	}
	s.order = append(s.order, m)
	s.byName[m.Name()] = m
}

// Get returns the module registered under name
func (s *Set) Get(name string) (Module, bool) {
	s.mu.RLock()
	m, ok := s.byName[name]
	s.mu.RUnlock()
	return m, ok
}

// Names lists module names in Add order
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	for i, m := range s.order {
		out[i] = m.Name()
	}
	return out
}

// Mount mounts every module on r
func (s *Set) Mount(r phttp.Router) {
	s.mu.RLock()
	ms := append([]Module(nil), s.order...)
	s.mu.RUnlock()
	for _, m := range ms {
		m.MountRoutes(r)
	}
}
