package models

import "fmt"

// Friend represents one row in the friend list.
type Friend struct {
	// ID is the opaque unique identifier for the friend (UUID format for
	// friends added at runtime, numeric strings for the seed records).
	ID string

	// Name is the display name. Never empty.
	Name string

	// Image is the avatar URI. Only stored and displayed, never fetched.
	Image string

	// Balance is the running total between the user and this friend.
	// Negative = user owes friend, positive = friend owes user.
	Balance int64
}

// Standing classifies a balance from the user's point of view.
type Standing int

const (
	StandingEven Standing = iota
	StandingOwe           // user owes the friend
	StandingOwed          // friend owes the user
)

// Standing returns how the user stands with this friend.
func (f Friend) Standing() Standing {
	switch {
	case f.Balance < 0:
		return StandingOwe
	case f.Balance > 0:
		return StandingOwed
	default:
		return StandingEven
	}
}

// Describe renders the balance the way the friend list shows it.
func (f Friend) Describe() string {
	switch f.Standing() {
	case StandingOwe:
		return fmt.Sprintf("You owe %s $%d", f.Name, -f.Balance)
	case StandingOwed:
		return fmt.Sprintf("%s owes you $%d", f.Name, f.Balance)
	default:
		return fmt.Sprintf("You and %s are even", f.Name)
	}
}

// PlaceholderImage is the default avatar service URI.
const PlaceholderImage = "https://i.pravatar.cc/48"

// SeedFriends returns the friends present at process start.
func SeedFriends() []Friend {
	return []Friend{
		{ID: "118836", Name: "Clark", Image: PlaceholderImage + "?u=118836", Balance: -7},
		{ID: "933372", Name: "Sarah", Image: PlaceholderImage + "?u=933372", Balance: 20},
		{ID: "499476", Name: "Anthony", Image: PlaceholderImage + "?u=499476", Balance: 0},
	}
}
