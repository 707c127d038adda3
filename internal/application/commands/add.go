package commands

import (
	"context"
	"fmt"

	"aacboard/internal/application"
)

// AddMode indicates what adding on the current screen creates
type AddMode int

const (
	AddModeCategory AddMode = iota
	AddModeItem
)

func (m AddMode) String() string {
	if m == AddModeCategory {
		return "category"
	}
	return "item"
}

// AddItemResult contains the result of adding to the board
type AddItemResult struct {
	Mode        AddMode
	ID          string
	Text        string
	Overwritten bool
	Message     string
}

// AddItemCommand adds a category (at home) or an item (inside a category)
type AddItemCommand struct {
	session *application.Session
	ID      string
	Text    string
	// Force allows replacing an existing category and dropping its items
	Force bool
}

// NewAddItemCommand creates a new AddItemCommand
func NewAddItemCommand(session *application.Session, id, text string) *AddItemCommand {
	return &AddItemCommand{
		session: session,
		ID:      id,
		Text:    text,
	}
}

// Validate checks if the add operation is valid
func (c *AddItemCommand) Validate() error {
	if err := application.ValidateID("id", c.ID); err != nil {
		return err
	}
	return application.ValidateText("text", c.Text)
}

// Execute runs the add command
func (c *AddItemCommand) Execute(ctx context.Context) (*AddItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var (
		mode      AddMode
		overwrite bool
	)
	err := c.session.Update(func(b *application.Board) error {
		mode = AddModeItem
		if b.AtHome() {
			mode = AddModeCategory
			if existing, ok := b.Category(c.ID); ok {
				if !c.Force {
					return &application.OverwriteError{
						ID:    c.ID,
						Name:  existing.Name(),
						Items: existing.Len(),
					}
				}
				overwrite = true
			}
		}
		b.AddItem(c.ID, c.Text)
		return nil
	})
	if err != nil {
		return nil, err
	}

	verb := "Added"
	if overwrite {
		verb = "Replaced"
	}
	return &AddItemResult{
		Mode:        mode,
		ID:          c.ID,
		Text:        c.Text,
		Overwritten: overwrite,
		Message:     fmt.Sprintf("%s %s: %s %s", verb, mode, c.ID, c.Text),
	}, nil
}

// CheckOverwrite reports the category that adding id would replace, if any
func CheckOverwrite(session *application.Session, id string) *application.OverwriteError {
	var oe *application.OverwriteError
	session.View(func(b *application.Board) {
		if !b.AtHome() {
			return
		}
		if cat, ok := b.Category(id); ok {
			oe = &application.OverwriteError{ID: id, Name: cat.Name(), Items: cat.Len()}
		}
	})
	return oe
}
