package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"aacboard/internal/application"
)

// SelectResult contains the result of selecting an identifier
type SelectResult struct {
	ID           string
	Spoken       string // Empty when the selection navigated
	CategoryID   string // Category spoken from or navigated into
	CategoryName string
	Message      string
}

// Navigated reports whether the selection moved into a category
func (r *SelectResult) Navigated() bool {
	return r.Spoken == ""
}

// SelectCommand selects an item or category on the board
type SelectCommand struct {
	session *application.Session
	ID      string
}

// NewSelectCommand creates a new SelectCommand
func NewSelectCommand(session *application.Session, id string) *SelectCommand {
	return &SelectCommand{
		session: session,
		ID:      id,
	}
}

// Execute runs the select command. Spoken text goes to the session speaker
// and into the history.
func (c *SelectCommand) Execute(ctx context.Context) (*SelectResult, error) {
	text, categoryID, err := c.session.Select(c.ID)
	if err != nil {
		return nil, err
	}

	var name string
	c.session.View(func(b *application.Board) {
		name = b.CurrentCategoryName()
	})

	result := &SelectResult{
		ID:           c.ID,
		Spoken:       text,
		CategoryID:   categoryID,
		CategoryName: name,
	}

	if result.Navigated() {
		result.Message = fmt.Sprintf("Opened %s", name)
		return result, nil
	}

	result.Message = text
	if store := c.session.Store(); store != nil {
		if err := store.RecordSpoken(categoryID, c.ID, text); err != nil {
			c.session.Logger().Warn("failed to record spoken item",
				zap.String("item", c.ID),
				zap.Error(err))
		}
	}
	if speaker := c.session.Speaker(); speaker != nil {
		if err := speaker.Speak(text); err != nil {
			return result, fmt.Errorf("failed to speak %q: %w", text, err)
		}
	}

	return result, nil
}

// ResetResult contains the result of a reset
type ResetResult struct {
	Message string
}

// ResetCommand returns the board to the home menu
type ResetCommand struct {
	session *application.Session
}

// NewResetCommand creates a new ResetCommand
func NewResetCommand(session *application.Session) *ResetCommand {
	return &ResetCommand{session: session}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context) (*ResetResult, error) {
	c.session.Reset()
	return &ResetResult{Message: "Back to home"}, nil
}
