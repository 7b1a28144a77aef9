package session

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Registry holds the sessions of a process by ID.
type Registry struct {
	mu       sync.RWMutex
	nextID   int
	sessions map[int]*Session
}

// NewRegistry creates an empty registry. IDs start at 1.
func NewRegistry() *Registry {
	return &Registry{
		nextID:   1,
		sessions: make(map[int]*Session),
	}
}

// Create registers a new session for game under a fresh ID.
func (r *Registry) Create(name string, game *engine.Game) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := New(r.nextID, name, game)
	r.sessions[s.id] = s
	r.nextID++
	return s
}

// Get returns the session with the given ID.
func (r *Registry) Get(id int) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("game %d: %w", id, errors.ErrGameNotFound)
	}
	return s, nil
}

// Remove deletes the session with the given ID.
func (r *Registry) Remove(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("game %d: %w", id, errors.ErrGameNotFound)
	}
	delete(r.sessions, id)
	return nil
}

// List returns every session ordered by ID.
func (r *Registry) List() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := maps.Keys(r.sessions)
	slices.Sort(ids)
	out := make([]*Session, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.sessions[id])
	}
	return out
}

// Len returns the number of sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
