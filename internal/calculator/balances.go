package calculator

import "github.com/mmynk/eatnsplit/internal/models"

// Summary aggregates the user's position across all friends.
type Summary struct {
	TotalOwed  int64 // Sum of positive balances: what friends owe the user
	TotalOwing int64 // Sum of negative balances as a positive number: what the user owes
	Net        int64 // TotalOwed - TotalOwing
	Settled    int   // Friends with a zero balance
}

// Summarize computes the user's overall balance.
//
// Algorithm:
// - Positive balance: friend owes the user, added to TotalOwed
// - Negative balance: user owes the friend, added to TotalOwing
// - Zero: counted as settled
func Summarize(friends []models.Friend) Summary {
	var s Summary
	for _, f := range friends {
		switch f.Standing() {
		case models.StandingOwed:
			s.TotalOwed += f.Balance
		case models.StandingOwe:
			s.TotalOwing += -f.Balance
		default:
			s.Settled++
		}
	}
	s.Net = s.TotalOwed - s.TotalOwing
	return s
}
