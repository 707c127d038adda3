package views

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"aacboard/internal/adapters/filesystem"
	"aacboard/internal/application"
)

const testBoard = `img/food/plate.png food
>img/food/fries.png french fries
>img/food/watermelon.png watermelon
img/clothing/hanger.png clothing
>img/clothing/shirt.png collared shirt
`

func newTestSession(t *testing.T) *application.Session {
	t.Helper()

	board, err := filesystem.Decode(strings.NewReader(testBoard))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	repo := filesystem.NewRepository(filepath.Join(t.TempDir(), "board.txt"))
	return application.NewSession(board, repo)
}

// drive feeds msg to the model and runs the returned commands until none
// are left, like the bubbletea runtime would
func drive(m tea.Model, msg tea.Msg) tea.Msg {
	var last tea.Msg
	for msg != nil {
		var cmd tea.Cmd
		_, cmd = m.Update(msg)
		last = msg
		if cmd == nil {
			break
		}
		msg = cmd()
		switch msg.(type) {
		case SwitchToAddMsg, SwitchToHelpMsg, SwitchToBoardMsg, OpenEditorMsg, AddSuccessMsg:
			return msg
		}
	}
	return last
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedBoard(t *testing.T) *BoardModel {
	t.Helper()

	m := NewBoardModel(newTestSession(t))
	drive(m, m.Init()())
	return m
}

func TestBoardModel_Home(t *testing.T) {
	m := loadedBoard(t)

	view := m.View()
	for _, want := range []string{"Home", "food", "clothing"} {
		if !strings.Contains(view, want) {
			t.Errorf("home view missing %q", want)
		}
	}
	if strings.Contains(view, "french fries") {
		t.Error("home view should not list items")
	}
}

func TestBoardModel_SelectCategoryThenItem(t *testing.T) {
	m := loadedBoard(t)

	drive(m, keyMsg("enter"))
	view := m.View()
	if !strings.Contains(view, "french fries") || !strings.Contains(view, "watermelon") {
		t.Fatalf("food category should list its items:\n%s", view)
	}
	if m.Cursor() != 0 {
		t.Errorf("cursor should reset on navigation, got %d", m.Cursor())
	}

	drive(m, keyMsg("down"))
	drive(m, keyMsg("enter"))
	if m.Spoken() != "watermelon" {
		t.Errorf("expected watermelon spoken, got %q", m.Spoken())
	}
	if !strings.Contains(m.View(), "watermelon") {
		t.Error("spoken text should be shown")
	}

	drive(m, keyMsg("esc"))
	if m.Spoken() != "" {
		t.Error("going home should clear the spoken banner")
	}
	if !strings.Contains(m.View(), "clothing") {
		t.Error("esc should return to the home listing")
	}
}

func TestBoardModel_SwitchMessages(t *testing.T) {
	tests := []struct {
		key  string
		want tea.Msg
	}{
		{"n", SwitchToAddMsg{}},
		{"?", SwitchToHelpMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := loadedBoard(t)
			if got := drive(m, keyMsg(tt.key)); got != tt.want {
				t.Errorf("expected %T, got %T", tt.want, got)
			}
		})
	}
}

func TestBoardModel_SaveAndEdit(t *testing.T) {
	m := loadedBoard(t)

	drive(m, keyMsg("s"))
	if m.MessageErr || !strings.Contains(m.Message, "Saved") {
		t.Errorf("expected save message, got %q (err=%v)", m.Message, m.MessageErr)
	}

	msg := drive(m, keyMsg("e"))
	open, ok := msg.(OpenEditorMsg)
	if !ok {
		t.Fatalf("expected OpenEditorMsg, got %T", msg)
	}
	if !strings.HasSuffix(open.Path, "board.txt") {
		t.Errorf("unexpected editor path %q", open.Path)
	}
}
