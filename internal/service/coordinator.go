// Package service implements the root coordinator that ties the selection
// state machine to the friend store.
package service

import (
	"log/slog"

	"github.com/mmynk/eatnsplit/internal/calculator"
	"github.com/mmynk/eatnsplit/internal/metrics"
	"github.com/mmynk/eatnsplit/internal/middleware"
	"github.com/mmynk/eatnsplit/internal/models"
	"github.com/mmynk/eatnsplit/internal/selection"
	"github.com/mmynk/eatnsplit/internal/storage"
)

// Coordinator owns the selection state and applies transitions to the store.
// It is not safe for concurrent Dispatch calls; the UI event loop is its only caller.
type Coordinator struct {
	store    storage.FriendStore
	metrics  *metrics.Metrics
	state    selection.State
	dispatch middleware.DispatchFunc
}

// Snapshot is everything the presentation layer renders.
type Snapshot struct {
	State   selection.State
	Friends []models.Friend
	Summary calculator.Summary
}

// NewCoordinator creates a Coordinator in the idle state.
func NewCoordinator(store storage.FriendStore, m *metrics.Metrics, interceptors ...middleware.Interceptor) *Coordinator {
	c := &Coordinator{
		store:   store,
		metrics: m,
		state:   selection.Idle(),
	}
	c.dispatch = middleware.Chain(c.apply, interceptors...)
	return c
}

// Dispatch handles one user action. Returns false if the event did not apply.
func (c *Coordinator) Dispatch(ev selection.Event) bool {
	return c.dispatch(ev)
}

// State returns the current selection state.
func (c *Coordinator) State() selection.State {
	return c.state
}

// Friends returns the friend list in order.
func (c *Coordinator) Friends() []models.Friend {
	return c.store.List()
}

// Selected returns the friend chosen for a split, if any.
func (c *Coordinator) Selected() (models.Friend, bool) {
	if c.state.Mode != selection.ModeSplittingBill {
		return models.Friend{}, false
	}
	return c.store.Get(c.state.Selected)
}

// Pending returns the friend awaiting delete confirmation, if any.
func (c *Coordinator) Pending() (models.Friend, bool) {
	if c.state.Mode != selection.ModeConfirmingDelete {
		return models.Friend{}, false
	}
	return c.store.Get(c.state.Pending)
}

// Snapshot returns the state, friends and balance summary together.
func (c *Coordinator) Snapshot() Snapshot {
	friends := c.store.List()
	return Snapshot{
		State:   c.state,
		Friends: friends,
		Summary: calculator.Summarize(friends),
	}
}

func (c *Coordinator) apply(ev selection.Event) bool {
	if click, ok := ev.(selection.ClickFriend); ok {
		if _, exists := c.store.Get(click.ID); !exists {
			slog.Warn("Click on unknown friend ignored", "friend_id", click.ID)
			c.ignored(ev)
			return false
		}
	}

	next, effects := selection.Apply(c.state, ev)
	if next == c.state && len(effects) == 0 {
		c.ignored(ev)
		return false
	}

	for _, effect := range effects {
		c.run(ev, effect)
	}

	if next.Mode != c.state.Mode {
		slog.Debug("Mode changed", "from", c.state.Mode, "to", next.Mode)
	}
	c.state = next
	return true
}

func (c *Coordinator) run(ev selection.Event, effect selection.Effect) {
	switch e := effect.(type) {
	case selection.AppendFriend:
		c.store.Append(e.Friend)
		c.metrics.FriendsAdded.Inc()
		slog.Info("Friend added", "friend_id", e.Friend.ID, "name", e.Friend.Name)

	case selection.RemoveFriend:
		if !c.store.Remove(e.ID) {
			slog.Warn("Remove of unknown friend ignored", "friend_id", e.ID)
			return
		}
		c.metrics.FriendsDeleted.Inc()
		slog.Info("Friend deleted", "friend_id", e.ID)

	case selection.AdjustBalance:
		updated, ok := c.store.AdjustBalance(e.ID, e.Delta)
		if !ok {
			slog.Warn("Balance adjustment for unknown friend ignored", "friend_id", e.ID)
			return
		}
		payer := models.PayerUser
		if split, ok := ev.(selection.SubmitSplitBill); ok {
			payer = split.Payer
		}
		c.metrics.BillsSplit.WithLabelValues(payer.String()).Inc()
		slog.Info("Bill split",
			"friend_id", e.ID,
			"payer", payer,
			"delta", e.Delta,
			"balance", updated.Balance,
		)
	}
}

func (c *Coordinator) ignored(ev selection.Event) {
	c.metrics.EventsIgnored.WithLabelValues(ev.Name()).Inc()
}
