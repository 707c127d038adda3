package commands

import (
	"context"

	"aacboard/internal/application"
)

// ListResult describes the current screen of the board
type ListResult struct {
	AtHome       bool
	CategoryID   string
	CategoryName string
	Entries      []application.Entry
}

// IDs returns the identifiers of the listed entries
func (r *ListResult) IDs() []string {
	ids := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// ListCommand lists what the board currently shows
type ListCommand struct {
	session *application.Session
}

// NewListCommand creates a new ListCommand
func NewListCommand(session *application.Session) *ListCommand {
	return &ListCommand{session: session}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) (*ListResult, error) {
	var result ListResult
	c.session.View(func(b *application.Board) {
		result = ListResult{
			AtHome:       b.AtHome(),
			CategoryID:   b.CurrentCategoryID(),
			CategoryName: b.CurrentCategoryName(),
			Entries:      application.CurrentEntries(b),
		}
	})
	return &result, nil
}

// HasItemCommand checks whether an identifier exists anywhere on the board
type HasItemCommand struct {
	session *application.Session
	ID      string
}

// NewHasItemCommand creates a new HasItemCommand
func NewHasItemCommand(session *application.Session, id string) *HasItemCommand {
	return &HasItemCommand{
		session: session,
		ID:      id,
	}
}

// Execute runs the has-item command
func (c *HasItemCommand) Execute(ctx context.Context) (bool, error) {
	var found bool
	c.session.View(func(b *application.Board) {
		found = b.HasItem(c.ID)
	})
	return found, nil
}

// TreeCategory is one category with all of its items
type TreeCategory struct {
	ID    string
	Name  string
	Items []application.Item
}

// TreeCommand returns the whole board, category by category
type TreeCommand struct {
	session *application.Session
}

// NewTreeCommand creates a new TreeCommand
func NewTreeCommand(session *application.Session) *TreeCommand {
	return &TreeCommand{session: session}
}

// Execute runs the tree command
func (c *TreeCommand) Execute(ctx context.Context) ([]TreeCategory, error) {
	var tree []TreeCategory
	c.session.View(func(b *application.Board) {
		tree = make([]TreeCategory, 0, b.Len())
		for _, id := range b.CategoryIDs() {
			cat, _ := b.Category(id)
			tree = append(tree, TreeCategory{ID: id, Name: cat.Name(), Items: cat.Items()})
		}
	})
	return tree, nil
}
