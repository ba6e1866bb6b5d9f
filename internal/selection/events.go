package selection

import "github.com/mmynk/eatnsplit/internal/models"

// Event is a discrete user action.
type Event interface {
	// Name is a stable identifier used in logs and metrics labels.
	Name() string
}

type (
	ToggleAddMode    struct{}
	ToggleDeleteMode struct{}
	ClickFriend      struct{ ID string }
	ConfirmDelete    struct{}
	CancelDelete     struct{}
	SubmitAddFriend  struct{ Friend models.Friend }
	SubmitSplitBill  struct {
		Delta int64
		Payer models.Payer
	}
)

func (ToggleAddMode) Name() string    { return "toggle_add_mode" }
func (ToggleDeleteMode) Name() string { return "toggle_delete_mode" }
func (ClickFriend) Name() string      { return "click_friend" }
func (ConfirmDelete) Name() string    { return "confirm_delete" }
func (CancelDelete) Name() string     { return "cancel_delete" }
func (SubmitAddFriend) Name() string  { return "submit_add_friend" }
func (SubmitSplitBill) Name() string  { return "submit_split_bill" }

// Effect is a friend-list mutation requested by a transition.
type Effect interface {
	effect()
}

type (
	AppendFriend  struct{ Friend models.Friend }
	RemoveFriend  struct{ ID string }
	AdjustBalance struct {
		ID    string
		Delta int64
	}
)

func (AppendFriend) effect()  {}
func (RemoveFriend) effect()  {}
func (AdjustBalance) effect() {}
