package selection

// Apply returns the state after ev and the list mutations it requires.
// Events that don't apply in s.Mode return s unchanged with no effects.
func Apply(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case ToggleAddMode:
		if s.Mode == ModeAddingFriend {
			return Idle(), nil
		}
		return State{Mode: ModeAddingFriend}, nil

	case ToggleDeleteMode:
		if s.DeleteModeActive() {
			return Idle(), nil
		}
		return State{Mode: ModeDeleteSelect}, nil

	case ClickFriend:
		if ev.ID == "" {
			return s, nil
		}
		if s.DeleteModeActive() {
			return State{Mode: ModeConfirmingDelete, Pending: ev.ID}, nil
		}
		if s.IsSelected(ev.ID) {
			return Idle(), nil
		}
		return State{Mode: ModeSplittingBill, Selected: ev.ID}, nil

	case ConfirmDelete:
		if s.Mode != ModeConfirmingDelete {
			return s, nil
		}
		return Idle(), []Effect{RemoveFriend{ID: s.Pending}}

	case CancelDelete:
		if !s.DeleteModeActive() {
			return s, nil
		}
		return Idle(), nil

	case SubmitAddFriend:
		if s.Mode != ModeAddingFriend {
			return s, nil
		}
		return Idle(), []Effect{AppendFriend{Friend: ev.Friend}}

	case SubmitSplitBill:
		if s.Mode != ModeSplittingBill {
			return s, nil
		}
		return Idle(), []Effect{AdjustBalance{ID: s.Selected, Delta: ev.Delta}}
	}

	return s, nil
}
