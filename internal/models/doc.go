// Package models defines the core domain models for eatnsplit.
//
// # Models
//
//   - Friend: a person the user splits bills with, carrying a running balance
//   - Amount: an optional whole-currency value entered on the split-bill form
//   - Payer: who paid the bill being split
//
// # Balance convention
//
// Balances are signed whole-currency integers seen from the user's side:
//
//	balance < 0   the user owes the friend
//	balance > 0   the friend owes the user
//	balance == 0  settled
//
// # Design Principles
//
//  1. Friends are values. The store hands out copies, never pointers into its slice.
//  2. Identifiers are opaque strings and never change once assigned.
//  3. "Not entered yet" is its own Amount state, separate from zero.
package models
