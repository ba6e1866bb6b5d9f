// Package selection implements the friend-list state machine.
//
// # State Machine
//
// A single Mode replaces independent visibility flags:
//
//	ModeIdle              list only, add and delete entry points visible
//	ModeAddingFriend      add-friend form open
//	ModeDeleteSelect      row clicks pick a friend to delete
//	ModeConfirmingDelete  confirmation prompt for State.Pending
//	ModeSplittingBill     split-bill form open for State.Selected
//
// Apply is the only transition function. It never touches storage; changes
// to the friend list are returned as Effects for the caller to run. Events
// that make no sense in the current mode leave the state unchanged.
//
// The visibility flags the UI needs are derived from the state by
// State.Affordances, so impossible combinations can't be represented.
package selection
