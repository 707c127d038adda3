package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"aacboard/internal/adapters/tui/styles"
	"aacboard/internal/application"
	"aacboard/internal/application/commands"
)

const (
	fieldID = iota
	fieldText
)

// AddModel is the form for adding a category at home or an item inside a
// category
type AddModel struct {
	ViewState
	session      *application.Session
	form         *InputForm
	confirm      ConfirmationModel
	atHome       bool
	categoryName string
}

// NewAddModel creates a new add view model
func NewAddModel(session *application.Session) *AddModel {
	return &AddModel{
		session: session,
		form: NewInputForm(
			NewInputField("ID:", "img/food/soup.png", 200),
			NewInputField("Text:", "", 200),
		),
		confirm: NewConfirmationModel(),
	}
}

// Prepare clears the form and picks the mode from where the board is
func (m *AddModel) Prepare() {
	m.ClearMessage()
	m.confirm.Clear()
	m.form.Reset()

	m.session.View(func(b *application.Board) {
		m.atHome = b.AtHome()
		m.categoryName = b.CurrentCategoryName()
	})

	if m.atHome {
		m.form.Fields[fieldText].Label = "Category name:"
		m.form.Fields[fieldText].Input.Placeholder = "food"
	} else {
		m.form.Fields[fieldText].Label = "Spoken text:"
		m.form.Fields[fieldText].Input.Placeholder = "tomato soup"
	}
}

// Init initializes the add view
func (m *AddModel) Init() tea.Cmd {
	return m.form.Init()
}

// AddSuccessMsg indicates the board was changed
type AddSuccessMsg struct {
	Message string
}

// AddErrMsg indicates the addition was refused or failed
type AddErrMsg struct {
	Err error
}

type overwriteCancelledMsg struct{}

// Update handles messages for the add view
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case AddErrMsg:
		var oe *application.OverwriteError
		if errors.As(msg.Err, &oe) {
			m.confirm.SetTarget(oe)
			return m, nil
		}
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case overwriteCancelledMsg:
		m.confirm.Clear()
		m.SetMessage("Kept the existing category", false)
		return m, nil

	case tea.KeyMsg:
		if m.confirm.Active() {
			_, cmd := m.confirm.HandleKeyMsg(msg,
				func() tea.Msg { return m.add(true) },
				func() tea.Msg { return overwriteCancelledMsg{} },
			)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBoardMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			m.ClearMessage()
			return m, func() tea.Msg { return m.add(false) }
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// add runs the add command. Without force an existing category comes back
// as an OverwriteError so the user can confirm.
func (m *AddModel) add(force bool) tea.Msg {
	cmd := commands.NewAddItemCommand(m.session, m.form.Value(fieldID), m.form.Value(fieldText))
	cmd.Force = force

	result, err := cmd.Execute(context.Background())
	if err != nil {
		return AddErrMsg{Err: err}
	}
	return AddSuccessMsg{Message: result.Message}
}

// View renders the add view
func (m *AddModel) View() string {
	var b strings.Builder

	if m.atHome {
		b.WriteString(styles.Title.Render("Add Category"))
		b.WriteString("\n\n")
		b.WriteString(styles.Subtitle.Render("A new category on the home menu."))
	} else {
		b.WriteString(styles.Title.Render("Add Item"))
		b.WriteString("\n\n")
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("A new item in %s.", m.categoryName)))
	}
	b.WriteString("\n\n")

	for i := range m.form.Fields {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n\n")
	}

	if m.confirm.Active() {
		b.WriteString(RenderTargetInfo(m.confirm.Target))
		b.WriteString("\n\n")
		b.WriteString(RenderConfirmPrompt("Replace it?"))
		return styles.App.Render(b.String())
	}

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.RenderHelp("add"))

	return styles.App.Render(b.String())
}

// Confirming reports whether the view waits for an overwrite confirmation
func (m *AddModel) Confirming() bool {
	return m.confirm.Active()
}
