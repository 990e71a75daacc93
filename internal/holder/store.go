package holder

import (
	"context"
	"sync"
)

// Store is the account-directory collaborator: it maps identifiers and
// usernames to holders. There is no ambient global registry; callers pass
// a Store explicitly.
type Store interface {
	Create(ctx context.Context, h *Holder) error
	Find(ctx context.Context, id string) (*Holder, error)
	FindByUsername(ctx context.Context, username string) (*Holder, error)
	List(ctx context.Context) ([]*Holder, error)
}

// InMemory implements Store with in-process maps. The mutex exists so the
// directory is safe to share; ledger accounts themselves stay
// single-session and unsynchronized.
type InMemory struct {
	mu       sync.RWMutex
	holders  map[string]*Holder
	username map[string]string // username -> holder id
}

// NewInMemory creates an empty directory.
func NewInMemory() *InMemory {
	return &InMemory{
		holders:  make(map[string]*Holder),
		username: make(map[string]string),
	}
}

func (s *InMemory) Create(ctx context.Context, h *Holder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.username[h.Username]; ok {
		return ErrDuplicateUsername
	}
	s.holders[h.ID] = h
	s.username[h.Username] = h.ID
	return nil
}

func (s *InMemory) Find(ctx context.Context, id string) (*Holder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.holders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return h, nil
}

func (s *InMemory) FindByUsername(ctx context.Context, username string) (*Holder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.username[username]
	if !ok {
		return nil, ErrNotFound
	}
	return s.holders[id], nil
}

func (s *InMemory) List(ctx context.Context) ([]*Holder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Holder, 0, len(s.holders))
	for _, h := range s.holders {
		out = append(out, h)
	}
	return out, nil
}
