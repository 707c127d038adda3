package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"aacboard/internal/adapters/tui/views"
	"aacboard/internal/application"
	"aacboard/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewAdd
	ViewHelp
)

// App is the main TUI application model
type App struct {
	session *application.Session
	editor  ports.EditorOpener
	logger  *zap.Logger

	state ViewState
	board *views.BoardModel
	add   *views.AddModel
	help  *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. editor may be nil, in which case
// the edit key is disabled.
func NewApp(session *application.Session, editor ports.EditorOpener) *App {
	return &App{
		session: session,
		editor:  editor,
		logger:  session.Logger(),
		state:   ViewBoard,
		board:   views.NewBoardModel(session),
		add:     views.NewAddModel(session),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.board.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.board.SetSize(msg.Width, msg.Height)
		a.add.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToAddMsg:
		a.state = ViewAdd
		a.add.Prepare()
		return a, a.add.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBoardMsg:
		a.state = ViewBoard
		return a, a.board.Reload()

	case views.AddSuccessMsg:
		a.logger.Info("board changed", zap.String("message", msg.Message))
		a.state = ViewBoard
		a.board.SetMessage(msg.Message+" (unsaved)", false)
		return a, a.board.Reload()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		return a, a.afterEditor(msg.err)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBoard:
		_, cmd = a.board.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		a.board.SetMessage("No editor configured", true)
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// afterEditor reloads the board file the user just edited
func (a *App) afterEditor(err error) tea.Cmd {
	if err != nil {
		a.logger.Warn("editor failed", zap.Error(err))
		a.board.SetMessage(err.Error(), true)
		return nil
	}
	if err := a.session.Reload(); err != nil {
		a.logger.Warn("reload after edit failed", zap.Error(err))
		a.board.SetMessage(err.Error(), true)
		return nil
	}
	a.board.SetMessage("Reloaded "+a.session.Path(), false)
	return a.board.Reload()
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewAdd:
		return a.add.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.board.View()
	}
}
