// Package tui implements the terminal user interface using Bubble Tea.
//
// # Architecture
//
// The Model renders a service.Coordinator snapshot and turns key presses
// into selection events. It holds no friend-list state of its own; the only
// local state is the list cursor and the two form drafts.
//
// # Modes
//
// Key handling is dispatched on the coordinator's selection.Mode:
//   - ModeIdle / ModeDeleteSelect: list navigation, enter clicks the row
//   - ModeAddingFriend: text inputs for name and image, enter submits,
//     arrows and alt+enter still reach the list
//   - ModeSplittingBill: numeric inputs and payer toggle, enter submits
//   - ModeConfirmingDelete: y confirms, n cancels
//
// # Key Files
//
//   - model.go: Model definition and Update
//   - forms.go: add-friend and split-bill input handling
//   - view.go: rendering
//   - keys.go: key bindings and help
//   - styles.go: Lipgloss styling
package tui
