package selection

// Mode is the current screen state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAddingFriend
	ModeDeleteSelect
	ModeConfirmingDelete
	ModeSplittingBill
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAddingFriend:
		return "adding_friend"
	case ModeDeleteSelect:
		return "delete_select"
	case ModeConfirmingDelete:
		return "confirming_delete"
	case ModeSplittingBill:
		return "splitting_bill"
	default:
		return "unknown"
	}
}

// State is the whole selection state.
// Selected is set only in ModeSplittingBill, Pending only in ModeConfirmingDelete.
type State struct {
	Mode     Mode
	Selected string
	Pending  string
}

// Idle returns the initial state.
func Idle() State {
	return State{Mode: ModeIdle}
}

// DeleteModeActive reports whether row clicks select for deletion.
func (s State) DeleteModeActive() bool {
	return s.Mode == ModeDeleteSelect || s.Mode == ModeConfirmingDelete
}

// IsSelected reports whether id is the friend selected for a split.
func (s State) IsSelected(id string) bool {
	return s.Mode == ModeSplittingBill && s.Selected == id
}

// RowAction is the label of a friend row's button.
type RowAction string

const (
	RowSelect RowAction = "Select"
	RowClose  RowAction = "Close"
	RowDelete RowAction = "Delete"
)

// Affordances lists what the UI should show for a state.
type Affordances struct {
	ShowAddForm      bool
	ShowAddButton    bool
	AddButtonLabel   string
	ShowDeleteToggle bool
	ShowSplitForm    bool
	ShowConfirm      bool
}

// Affordances derives the visibility flags from the mode.
func (s State) Affordances() Affordances {
	switch s.Mode {
	case ModeAddingFriend:
		return Affordances{ShowAddForm: true, ShowAddButton: true, AddButtonLabel: "Close"}
	case ModeDeleteSelect:
		return Affordances{}
	case ModeConfirmingDelete:
		return Affordances{ShowConfirm: true}
	case ModeSplittingBill:
		return Affordances{ShowAddButton: true, AddButtonLabel: "Add Friend", ShowDeleteToggle: true, ShowSplitForm: true}
	default:
		return Affordances{ShowAddButton: true, AddButtonLabel: "Add Friend", ShowDeleteToggle: true}
	}
}

// RowAction returns the label for the row of friend id.
func (s State) RowAction(id string) RowAction {
	switch {
	case s.DeleteModeActive():
		return RowDelete
	case s.IsSelected(id):
		return RowClose
	default:
		return RowSelect
	}
}
