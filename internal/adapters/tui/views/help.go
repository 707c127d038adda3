package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"aacboard/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel lists the board key bindings
type HelpModel struct {
	ViewState
}

func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBoardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("AAC Board Help"))
	b.WriteString("\n\n")

	b.WriteString(renderSection("Navigation",
		BoardKeys.Up, BoardKeys.Down, BoardKeys.PrevPage, BoardKeys.NextPage))
	b.WriteString("\n")
	b.WriteString(renderSection("Board",
		BoardKeys.Select, BoardKeys.Home, BoardKeys.New, BoardKeys.Save, BoardKeys.Edit))
	b.WriteString("\n")
	b.WriteString(renderSection("General", BoardKeys.Help, BoardKeys.Quit))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("How it works"))
	b.WriteString("\n")
	for _, line := range []string{
		"Home lists the categories. Selecting one opens it.",
		"Inside a category, selecting an item speaks its text.",
		"Selecting another category from inside a category opens it.",
		"Adding at home creates a category; inside, it adds an item.",
		"Changes stay in memory until saved. Editing the file saves first.",
	} {
		b.WriteString(styles.MutedText.Render("  " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}
