package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"aacboard/internal/adapters/tui/styles"
	"aacboard/internal/application"
	"aacboard/internal/application/commands"
)

// BoardKeyMap defines key bindings for the board view
type BoardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Select   key.Binding
	Home     key.Binding
	New      key.Binding
	Save     key.Binding
	Edit     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BoardKeys = BoardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	Home: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "home"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "add"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit file"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// chrome is the number of lines the board view uses around the list
const chrome = 14

// BoardModel shows the current screen of the board
type BoardModel struct {
	ViewState
	session   *application.Session
	listing   *commands.ListResult
	paginator *Paginator
	spoken    string
}

// NewBoardModel creates a new board model
func NewBoardModel(session *application.Session) *BoardModel {
	return &BoardModel{
		session:   session,
		paginator: NewPaginator(defaultPageSize),
	}
}

// Init loads the current screen
func (m *BoardModel) Init() tea.Cmd {
	return m.load
}

func (m *BoardModel) load() tea.Msg {
	result, err := commands.NewListCommand(m.session).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return listedMsg{result}
}

type listedMsg struct {
	result *commands.ListResult
}

type selectedMsg struct {
	result *commands.SelectResult
	err    error
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Update handles messages for the board view
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case listedMsg:
		sameScreen := m.listing != nil && m.listing.CategoryID == msg.result.CategoryID
		m.listing = msg.result
		m.paginator.SetTotal(len(msg.result.Entries))
		if !sameScreen {
			m.paginator.Reset()
		}
		return m, nil

	case selectedMsg:
		return m, m.handleSelected(msg)

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BoardKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BoardKeys.Up):
			m.paginator.CursorUp()
			return m, nil

		case key.Matches(msg, BoardKeys.Down):
			m.paginator.CursorDown()
			return m, nil

		case key.Matches(msg, BoardKeys.PrevPage):
			m.paginator.PrevPage()
			return m, nil

		case key.Matches(msg, BoardKeys.NextPage):
			m.paginator.NextPage()
			return m, nil

		case key.Matches(msg, BoardKeys.Select):
			if entry, ok := m.selectedEntry(); ok {
				return m, m.selectEntry(entry.ID)
			}
			return m, nil

		case key.Matches(msg, BoardKeys.Home):
			if m.listing == nil || m.listing.AtHome {
				return m, nil
			}
			m.spoken = ""
			return m, m.reset

		case key.Matches(msg, BoardKeys.New):
			return m, func() tea.Msg { return SwitchToAddMsg{} }

		case key.Matches(msg, BoardKeys.Save):
			return m, m.save

		case key.Matches(msg, BoardKeys.Edit):
			return m, m.edit

		case key.Matches(msg, BoardKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

func (m *BoardModel) handleSelected(msg selectedMsg) tea.Cmd {
	if msg.result == nil {
		m.SetMessage(msg.err.Error(), true)
		return nil
	}
	if msg.result.Navigated() {
		m.spoken = ""
		return m.load
	}

	m.spoken = msg.result.Spoken
	if msg.err != nil {
		m.SetMessage(msg.err.Error(), true)
	}
	return nil
}

func (m *BoardModel) selectEntry(id string) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewSelectCommand(m.session, id).Execute(context.Background())
		return selectedMsg{result: result, err: err}
	}
}

func (m *BoardModel) reset() tea.Msg {
	if _, err := commands.NewResetCommand(m.session).Execute(context.Background()); err != nil {
		return errMsg{err}
	}
	return m.load()
}

func (m *BoardModel) save() tea.Msg {
	result, err := commands.NewSaveCommand(m.session).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return successMsg{result.Message}
}

// edit saves pending changes so the editor sees them, then asks for the
// editor to be opened
func (m *BoardModel) edit() tea.Msg {
	if _, err := commands.NewSaveCommand(m.session).Execute(context.Background()); err != nil {
		return errMsg{err}
	}
	return OpenEditorMsg{Path: m.session.Path()}
}

func (m *BoardModel) selectedEntry() (application.Entry, bool) {
	if m.listing == nil {
		return application.Entry{}, false
	}
	cursor := m.paginator.Cursor()
	if cursor < 0 || cursor >= len(m.listing.Entries) {
		return application.Entry{}, false
	}
	return m.listing.Entries[cursor], true
}

// View renders the board
func (m *BoardModel) View() string {
	if m.listing == nil {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("AAC Board"))
	b.WriteString("\n")
	b.WriteString(m.renderBreadcrumb())
	b.WriteString("\n\n")

	if m.spoken != "" {
		b.WriteString(styles.Spoken.Render(m.spoken))
		b.WriteString("\n\n")
	}

	if len(m.listing.Entries) == 0 {
		if m.listing.AtHome {
			b.WriteString(styles.MutedText.Render("No categories yet. Press n to add one."))
		} else {
			b.WriteString(styles.MutedText.Render("This category is empty. Press n to add an item."))
		}
		b.WriteString("\n")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderEntry(m.listing.Entries[i], i == m.paginator.Cursor()))
		b.WriteString("\n")
	}

	if m.paginator.TotalPages() > 1 {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages())))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BoardKeys.Select, BoardKeys.Home, BoardKeys.New,
		BoardKeys.Save, BoardKeys.Help, BoardKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *BoardModel) renderBreadcrumb() string {
	if m.listing.AtHome {
		return styles.Subtitle.Render("Home")
	}
	return styles.Subtitle.Render("Home › ") + styles.Breadcrumb.Render(m.listing.CategoryName)
}

func (m *BoardModel) renderEntry(entry application.Entry, selected bool) string {
	prefix := styles.EntryNoCursor
	if selected {
		prefix = styles.EntryCursor
	}

	text := entry.Label
	if entry.Kind == application.EntryCategory {
		text += " ›"
	}

	styled := styles.EntryStyle(entry.Kind == application.EntryCategory).Render(text)
	if selected {
		styled = styles.EntrySelected.Render(text)
	}

	return prefix + styled + "  " + styles.EntryID.Render(entry.ID)
}

// SetSize updates the view dimensions and the page size
func (m *BoardModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	if height > chrome {
		m.paginator.SetPageSize(height - chrome)
	}
}

// Reload lists the current screen again
func (m *BoardModel) Reload() tea.Cmd {
	return m.load
}

// Spoken returns the text in the banner
func (m *BoardModel) Spoken() string {
	return m.spoken
}

// Cursor returns the absolute cursor position
func (m *BoardModel) Cursor() int {
	return m.paginator.Cursor()
}
