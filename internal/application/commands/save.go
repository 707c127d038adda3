package commands

import (
	"context"
	"fmt"

	"aacboard/internal/application"
)

// SaveResult contains the result of saving the board
type SaveResult struct {
	Path    string
	Message string
}

// SaveCommand writes the board back to its file
type SaveCommand struct {
	session *application.Session
}

// NewSaveCommand creates a new SaveCommand
func NewSaveCommand(session *application.Session) *SaveCommand {
	return &SaveCommand{session: session}
}

// Execute runs the save command
func (c *SaveCommand) Execute(ctx context.Context) (*SaveResult, error) {
	if err := c.session.Save(); err != nil {
		return nil, err
	}
	return &SaveResult{
		Path:    c.session.Path(),
		Message: fmt.Sprintf("Saved %s", c.session.Path()),
	}, nil
}

// HistoryCommand lists recently spoken items, newest first
type HistoryCommand struct {
	session *application.Session
	Limit   int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(session *application.Session, limit int) *HistoryCommand {
	return &HistoryCommand{
		session: session,
		Limit:   limit,
	}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) ([]application.Utterance, error) {
	store := c.session.Store()
	if store == nil {
		return nil, nil
	}
	limit := c.Limit
	if limit <= 0 {
		limit = 20
	}
	return store.History(limit)
}
