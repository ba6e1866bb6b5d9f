package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/eatnsplit/internal/models"
	"github.com/mmynk/eatnsplit/internal/selection"
)

const (
	addFieldName = iota
	addFieldImage
	addFieldCount
)

const (
	splitFieldBill = iota
	splitFieldPaid
	splitFieldPayer
	splitFieldCount
)

func (m Model) handleAddFormKey(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Close):
		return m.dispatch(selection.ToggleAddMode{})
	case key.Matches(msg, keys.Submit):
		return m.submitAddFriend()
	case key.Matches(msg, keys.Next):
		return m, m.focusAddField((m.addFocus + 1) % addFieldCount)
	case key.Matches(msg, keys.Prev):
		return m, m.focusAddField((m.addFocus + addFieldCount - 1) % addFieldCount)
	case key.Matches(msg, keys.Click):
		return m.clickRow()
	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	m.addDraft.Name = m.addInputs[addFieldName].Value()
	m.addDraft.Image = m.addInputs[addFieldImage].Value()
	return m, cmd
}

// submitAddFriend leaves the form open with its draft when a field is empty.
func (m Model) submitAddFriend() (tea.Model, tea.Cmd) {
	friend, ok := m.addDraft.Submit(m.idGen)
	if !ok {
		return m, nil
	}
	m.syncAddInputs()
	return m.dispatch(selection.SubmitAddFriend{Friend: friend})
}

func (m *Model) syncAddInputs() {
	m.addInputs[addFieldName].SetValue(m.addDraft.Name)
	m.addInputs[addFieldImage].SetValue(m.addDraft.Image)
}

func (m *Model) focusAddField(field int) tea.Cmd {
	m.blurAddInputs()
	m.addFocus = field
	return m.addInputs[field].Focus()
}

func (m *Model) blurAddInputs() {
	for i := range m.addInputs {
		m.addInputs[i].Blur()
	}
}

func (m Model) handleSplitFormKey(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	selected := m.coord.State().Selected

	switch {
	case key.Matches(msg, keys.Close):
		return m.dispatch(selection.ClickFriend{ID: selected})
	case key.Matches(msg, keys.Submit):
		return m.submitSplitBill()
	case key.Matches(msg, keys.Next):
		return m, m.focusSplitField((m.splitFocus + 1) % splitFieldCount)
	case key.Matches(msg, keys.Prev):
		return m, m.focusSplitField((m.splitFocus + splitFieldCount - 1) % splitFieldCount)
	case key.Matches(msg, keys.Payer) && (m.splitFocus == splitFieldPayer || msg.String() == "p"):
		m.splitDraft.TogglePayer()
		return m, nil
	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
		return m, nil
	case msg.Type == tea.KeySpace:
		return m.clickRow()
	case key.Matches(msg, keys.Add):
		return m.dispatch(selection.ToggleAddMode{})
	case key.Matches(msg, keys.Delete):
		return m.dispatch(selection.ToggleDeleteMode{})
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	}

	if m.splitFocus == splitFieldPayer {
		return m, nil
	}
	return m.editSplitAmount(msg)
}

// editSplitAmount applies a key to the focused amount field and reverts the
// field when the result is not a valid amount or the draft rejects it.
func (m Model) editSplitAmount(msg tea.Msg) (tea.Model, tea.Cmd) {
	field := m.splitFocus
	prev := m.splitInputs[field].Value()

	var cmd tea.Cmd
	m.splitInputs[field], cmd = m.splitInputs[field].Update(msg)
	value := m.splitInputs[field].Value()
	if value == prev {
		return m, cmd
	}

	amount, err := models.ParseAmount(value)
	accepted := err == nil
	if accepted {
		switch field {
		case splitFieldBill:
			m.splitDraft.SetBill(amount)
		case splitFieldPaid:
			accepted = m.splitDraft.SetPaidByUser(amount)
		}
	}
	if !accepted {
		m.splitInputs[field].SetValue(prev)
	}
	return m, cmd
}

func (m Model) submitSplitBill() (tea.Model, tea.Cmd) {
	delta, ok := m.splitDraft.Submit()
	if !ok {
		return m, nil
	}
	return m.dispatch(selection.SubmitSplitBill{Delta: delta, Payer: m.splitDraft.Payer()})
}

func (m *Model) resetSplitForm(friendID string) {
	m.splitFor = friendID
	m.splitDraft.Reset()
	for i := range m.splitInputs {
		m.splitInputs[i].SetValue("")
	}
}

// focusSplitField focuses an amount input; the payer field has no input.
func (m *Model) focusSplitField(field int) tea.Cmd {
	m.blurSplitInputs()
	m.splitFocus = field
	if field == splitFieldPayer {
		return nil
	}
	return m.splitInputs[field].Focus()
}

func (m *Model) blurSplitInputs() {
	for i := range m.splitInputs {
		m.splitInputs[i].Blur()
	}
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.coord.State().Mode {
	case selection.ModeAddingFriend:
		m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	case selection.ModeSplittingBill:
		if m.splitFocus != splitFieldPayer {
			m.splitInputs[m.splitFocus], cmd = m.splitInputs[m.splitFocus].Update(msg)
		}
	}
	return m, cmd
}
