package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/eatnsplit/internal/calculator"
	"github.com/mmynk/eatnsplit/internal/models"
	"github.com/mmynk/eatnsplit/internal/selection"
	"github.com/mmynk/eatnsplit/internal/service"
)

// View implements tea.Model
func (m Model) View() string {
	snap := m.coord.Snapshot()
	aff := snap.State.Affordances()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Eat-'n-Split"))
	b.WriteString("\n\n")
	b.WriteString(m.renderFriendList(snap))
	b.WriteString("\n")
	b.WriteString(m.renderButtons(snap.State, aff))

	if aff.ShowAddForm {
		b.WriteString("\n")
		b.WriteString(m.renderAddForm())
	}
	if aff.ShowSplitForm {
		if friend, ok := m.coord.Selected(); ok {
			b.WriteString("\n")
			b.WriteString(m.renderSplitForm(friend))
		}
	}
	if aff.ShowConfirm {
		if friend, ok := m.coord.Pending(); ok {
			b.WriteString("\n")
			b.WriteString(renderConfirm(friend))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter(snap))
	return b.String()
}

func (m Model) renderFriendList(snap service.Snapshot) string {
	if len(snap.Friends) == 0 {
		return DimmedStyle.Render("No friends yet. Press a to add one.")
	}

	showCursor := snap.State.Mode != selection.ModeConfirmingDelete
	imageWidth := m.imageColumnWidth()

	rows := make([]string, 0, len(snap.Friends))
	for i, f := range snap.Friends {
		marker := "  "
		if showCursor && i == m.cursor {
			marker = CursorStyle.Render("> ")
		}

		cols := []string{
			NameStyle.Width(12).MaxWidth(12).Render(f.Name),
			balanceStyle(f).Width(28).Render(f.Describe()),
		}
		if imageWidth > 0 {
			cols = append(cols, DimmedStyle.Width(imageWidth).MaxWidth(imageWidth).Render(f.Image))
		}
		cols = append(cols, KeyStyle.Render("["+string(snap.State.RowAction(f.ID))+"]"))
		row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
		if snap.State.IsSelected(f.ID) {
			row = SelectedRowStyle.Render(row)
		}
		rows = append(rows, marker+row)
	}
	return strings.Join(rows, "\n")
}

const (
	rowFixedWidth = 2 + 12 + 28 + len("[Delete]")
	maxImageWidth = 34
	minImageWidth = 12
)

// imageColumnWidth fits the image column into the terminal width.
// Returns 0 when there is no room for it.
func (m Model) imageColumnWidth() int {
	if m.width == 0 {
		return maxImageWidth
	}
	w := min(m.width-rowFixedWidth, maxImageWidth)
	if w < minImageWidth {
		return 0
	}
	return w
}

func balanceStyle(f models.Friend) lipgloss.Style {
	switch f.Standing() {
	case models.StandingOwe:
		return OweStyle
	case models.StandingOwed:
		return OwedStyle
	default:
		return EvenStyle
	}
}

func (m Model) renderButtons(state selection.State, aff selection.Affordances) string {
	var buttons []string
	if aff.ShowDeleteToggle {
		buttons = append(buttons, ButtonStyle.Render("Delete Friend")+" "+KeyStyle.Render("d"))
	}
	if aff.ShowAddButton {
		hint := "a"
		if state.Mode == selection.ModeAddingFriend {
			hint = "esc"
		}
		buttons = append(buttons, ButtonStyle.Render(aff.AddButtonLabel)+" "+KeyStyle.Render(hint))
	}

	line := strings.Join(buttons, "   ")
	if state.Mode == selection.ModeDeleteSelect {
		line += "  " + DimmedStyle.Render("Pick a friend to delete, or press esc to stop.")
	}
	return line
}

func (m Model) renderAddForm() string {
	fields := []string{
		field("Friend name", m.addFocus == addFieldName, m.addInputs[addFieldName].View()),
		field("Image URL", m.addFocus == addFieldImage, m.addInputs[addFieldImage].View()),
		"",
		ButtonStyle.Render("Add") + " " + DimmedStyle.Render("enter"),
	}
	return FormStyle.Render(lipgloss.JoinVertical(lipgloss.Left, fields...))
}

func (m Model) renderSplitForm(friend models.Friend) string {
	payer := "You"
	if m.splitDraft.Payer() == models.PayerFriend {
		payer = friend.Name
	}

	fields := []string{
		TitleStyle.Render(strings.ToUpper("Split a bill with " + friend.Name)),
		"",
		field("Bill value", m.splitFocus == splitFieldBill, m.splitInputs[splitFieldBill].View()),
		field("Your expense", m.splitFocus == splitFieldPaid, m.splitInputs[splitFieldPaid].View()),
		field(friend.Name+"'s expense", false, DimmedStyle.Render(m.splitDraft.PaidByFriend().String())),
		field("Who is paying the bill", m.splitFocus == splitFieldPayer, "< "+payer+" >"),
		"",
		ButtonStyle.Render("Split bill") + " " + DimmedStyle.Render("enter"),
	}
	return FormStyle.Render(lipgloss.JoinVertical(lipgloss.Left, fields...))
}

func field(label string, focused bool, value string) string {
	style := LabelStyle
	if focused {
		style = FocusedLabelStyle
	}
	return style.Render(label) + value
}

func renderConfirm(friend models.Friend) string {
	body := fmt.Sprintf("Are you sure you want to delete %s?", NameStyle.Render(friend.Name))
	choices := KeyStyle.Render("[y]") + " Yes   " + KeyStyle.Render("[n]") + " No"
	return ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, "", choices))
}

func (m Model) renderFooter(snap service.Snapshot) string {
	summary := summaryLine(snap.Summary)
	return FooterStyle.Render(summary + "\n" + m.help.View(m.keys.forState(snap.State)))
}

func summaryLine(s calculator.Summary) string {
	return fmt.Sprintf("You are owed $%d · You owe $%d", s.TotalOwed, s.TotalOwing)
}
