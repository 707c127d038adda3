package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"aacboard/internal/adapters/tui/styles"
	"aacboard/internal/application"
)

// ConfirmKeyMap defines key bindings for confirmation prompts
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel asks before replacing an existing category
type ConfirmationModel struct {
	Target *application.OverwriteError
	Keys   ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// Active reports whether a confirmation is pending
func (m *ConfirmationModel) Active() bool {
	return m.Target != nil
}

func (m *ConfirmationModel) SetTarget(target *application.OverwriteError) {
	m.Target = target
}

func (m *ConfirmationModel) Clear() {
	m.Target = nil
}

// HandleKeyMsg processes key messages while a confirmation is pending.
// Returns (handled, cmd) where handled is true if the key was processed.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm, onCancel func() tea.Msg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		return true, func() tea.Msg { return onCancel() }
	case key.Matches(msg, m.Keys.Confirm):
		return true, func() tea.Msg { return onConfirm() }
	}
	return false, nil
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

// RenderTargetInfo describes the category that would be replaced
func RenderTargetInfo(target *application.OverwriteError) string {
	if target == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.WarningMsg.Render("Replace category:"))
	b.WriteString("\n  ")
	b.WriteString(target.ID)
	b.WriteString(" ")
	b.WriteString(target.Name)
	b.WriteString("\n  ")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d items will be dropped", target.Items)))
	return b.String()
}
