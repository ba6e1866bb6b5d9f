// Package memory provides an in-memory implementation of the storage.FriendStore interface.
package memory

import (
	"slices"
	"sync"

	"github.com/mmynk/eatnsplit/internal/models"
	"github.com/mmynk/eatnsplit/internal/storage"
)

// Ensure Store implements storage.FriendStore
var _ storage.FriendStore = (*Store)(nil)

// Store keeps friends in an ordered slice.
// The UI mutates it from a single goroutine; the lock exists for the
// metrics collector, which reads from the HTTP server goroutine.
type Store struct {
	mu      sync.RWMutex
	friends []models.Friend
}

// New creates a Store holding the given friends in order.
func New(seed ...models.Friend) *Store {
	return &Store{friends: slices.Clone(seed)}
}

// NewSeeded creates a Store holding models.SeedFriends.
func NewSeeded() *Store {
	return New(models.SeedFriends()...)
}

// Append adds a friend to the end of the list.
func (s *Store) Append(friend models.Friend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.friends = append(s.friends, friend)
}

// Remove deletes the friend with the given ID.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.friends = slices.Delete(s.friends, i, i+1)
	return true
}

// AdjustBalance adds delta to the matching friend's balance.
func (s *Store) AdjustBalance(id string, delta int64) (models.Friend, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Friend{}, false
	}
	s.friends[i].Balance += delta
	return s.friends[i], true
}

// Get returns a copy of the friend with the given ID.
func (s *Store) Get(id string) (models.Friend, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Friend{}, false
	}
	return s.friends[i], true
}

// List returns a copy of all friends in insertion order.
func (s *Store) List() []models.Friend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.friends)
}

// Len returns the number of friends.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.friends)
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.friends, func(f models.Friend) bool {
		return f.ID == id
	})
}
