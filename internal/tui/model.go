package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/eatnsplit/internal/forms"
	"github.com/mmynk/eatnsplit/internal/models"
	"github.com/mmynk/eatnsplit/internal/selection"
	"github.com/mmynk/eatnsplit/internal/service"
)

// Options configures New.
type Options struct {
	// PlaceholderImage is the add-friend form's default image URI.
	PlaceholderImage string

	// IDGenerator assigns IDs to new friends. Defaults to forms.UUIDGenerator.
	IDGenerator forms.IDGenerator
}

// Model is the main Bubbletea model
type Model struct {
	coord *service.Coordinator
	idGen forms.IDGenerator

	cursor int

	addDraft  forms.AddFriendDraft
	addInputs [addFieldCount]textinput.Model
	addFocus  int

	splitDraft  forms.SplitBillDraft
	splitInputs [splitFieldPayer]textinput.Model
	splitFocus  int
	splitFor    string // friend the split draft belongs to

	keys keyMap
	help help.Model

	width int
}

// New creates a Model rendering coord.
func New(coord *service.Coordinator, opts Options) Model {
	if opts.PlaceholderImage == "" {
		opts.PlaceholderImage = models.PlaceholderImage
	}
	if opts.IDGenerator == nil {
		opts.IDGenerator = forms.UUIDGenerator
	}

	m := Model{
		coord:      coord,
		idGen:      opts.IDGenerator,
		addDraft:   *forms.NewAddFriendDraft(opts.PlaceholderImage),
		splitDraft: *forms.NewSplitBillDraft(),
		keys:       newKeyMap(),
		help:       help.New(),
	}
	m.addInputs[addFieldName] = newInput("friend name", 32)
	m.addInputs[addFieldImage] = newInput("https://…", 256)
	m.splitInputs[splitFieldBill] = newInput("0", 9)
	m.splitInputs[splitFieldPaid] = newInput("0", 9)
	m.syncAddInputs()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 30
	ti.Prompt = ""
	return ti
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	// Cursor blink and other input messages go to the focused field
	return m.updateFocusedInput(msg)
}

// handleKeyPress processes keyboard input based on current mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.coord.State()
	keys := m.keys.forState(state)

	switch state.Mode {
	case selection.ModeConfirmingDelete:
		return m.handleConfirmKey(msg, keys)
	case selection.ModeAddingFriend:
		return m.handleAddFormKey(msg, keys)
	case selection.ModeSplittingBill:
		return m.handleSplitFormKey(msg, keys)
	default:
		return m.handleListKey(msg, keys)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, keys.Click):
		return m.clickRow()
	case key.Matches(msg, keys.Add):
		return m.dispatch(selection.ToggleAddMode{})
	case key.Matches(msg, keys.Delete):
		return m.dispatch(selection.ToggleDeleteMode{})
	case key.Matches(msg, keys.Close):
		return m.dispatch(selection.CancelDelete{})
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg, keys keyMap) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		return m.dispatch(selection.ConfirmDelete{})
	case key.Matches(msg, keys.Cancel):
		return m.dispatch(selection.CancelDelete{})
	}
	return m, nil
}

// dispatch sends ev to the coordinator and lines the forms up with the new mode.
func (m Model) dispatch(ev selection.Event) (tea.Model, tea.Cmd) {
	prev := m.coord.State()
	m.coord.Dispatch(ev)
	state := m.coord.State()

	m.clampCursor()

	if state.Mode != selection.ModeAddingFriend {
		m.blurAddInputs()
	}
	if state.Mode != selection.ModeSplittingBill {
		m.blurSplitInputs()
		m.splitFor = ""
	}

	switch state.Mode {
	case selection.ModeAddingFriend:
		if prev.Mode != selection.ModeAddingFriend {
			m.addDraft.Reset()
			m.syncAddInputs()
			return m, m.focusAddField(addFieldName)
		}
	case selection.ModeSplittingBill:
		if state.Selected != m.splitFor {
			m.resetSplitForm(state.Selected)
			return m, m.focusSplitField(splitFieldBill)
		}
	}
	return m, nil
}

func (m Model) clickRow() (tea.Model, tea.Cmd) {
	friends := m.coord.Friends()
	if len(friends) == 0 {
		return m, nil
	}
	return m.dispatch(selection.ClickFriend{ID: friends[m.cursor].ID})
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.coord.Friends())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
