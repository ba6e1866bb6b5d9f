package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mmynk/eatnsplit/internal/selection"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Click   key.Binding
	Add     key.Binding
	Delete  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
	Payer   key.Binding
	Close   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add friend"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete friend"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Payer: key.NewBinding(
			key.WithKeys("p", "left", "right"),
			key.WithHelp("p", "who paid"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "yes"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forState enables only the bindings that mean something in s.
func (k keyMap) forState(s selection.State) keyMap {
	aff := s.Affordances()
	mode := s.Mode

	listNav := mode != selection.ModeConfirmingDelete
	form := mode == selection.ModeAddingFriend || mode == selection.ModeSplittingBill

	k.Up.SetEnabled(listNav)
	k.Down.SetEnabled(listNav)
	k.Click.SetEnabled(mode != selection.ModeConfirmingDelete && mode != selection.ModeSplittingBill)
	switch mode {
	case selection.ModeDeleteSelect:
		k.Click.SetHelp("enter", "delete")
	case selection.ModeAddingFriend:
		// Printable keys and plain enter belong to the add form
		k.Up.SetKeys("up")
		k.Down.SetKeys("down")
		k.Click.SetKeys("alt+enter")
		k.Click.SetHelp("alt+enter", "select")
	default:
		k.Click.SetHelp("enter", "select")
	}
	// The add form's text inputs take every printable key, so the add
	// toggle is only reachable outside it; esc closes the form instead.
	k.Add.SetEnabled(aff.ShowAddButton && mode != selection.ModeAddingFriend)
	k.Delete.SetEnabled(aff.ShowDeleteToggle || mode == selection.ModeDeleteSelect)
	if mode == selection.ModeDeleteSelect {
		k.Delete.SetHelp("d", "done deleting")
	} else {
		k.Delete.SetHelp("d", "delete friend")
	}
	k.Next.SetEnabled(form)
	k.Prev.SetEnabled(form)
	k.Submit.SetEnabled(form)
	k.Payer.SetEnabled(mode == selection.ModeSplittingBill)
	k.Close.SetEnabled(form || mode == selection.ModeDeleteSelect)
	k.Confirm.SetEnabled(aff.ShowConfirm)
	k.Cancel.SetEnabled(aff.ShowConfirm)
	k.Quit.SetEnabled(mode != selection.ModeAddingFriend)
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Click, k.Submit, k.Payer, k.Add, k.Delete, k.Confirm, k.Cancel, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Click},
		{k.Add, k.Delete, k.Confirm, k.Cancel},
		{k.Next, k.Prev, k.Submit, k.Payer, k.Close},
		{k.Quit},
	}
}
