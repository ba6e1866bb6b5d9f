// Package storage provides abstractions for friend storage.
package storage

import "github.com/mmynk/eatnsplit/internal/models"

// FriendStore defines the interface for friend list operations.
// This abstraction keeps the coordinator independent of how the list is held.
//
// Lookups and mutations against an unknown ID are no-ops, never errors.
type FriendStore interface {
	// Append adds a friend to the end of the list.
	Append(friend models.Friend)

	// Remove deletes the friend with the given ID.
	// Returns false if no friend matched.
	Remove(id string) bool

	// AdjustBalance adds delta to the matching friend's balance and returns
	// the updated record. Returns false if no friend matched.
	AdjustBalance(id string, delta int64) (models.Friend, bool)

	// Get returns a copy of the friend with the given ID.
	Get(id string) (models.Friend, bool)

	// List returns a copy of all friends in insertion order.
	List() []models.Friend

	// Len returns the number of friends.
	Len() int
}
