package application

import "aacboard/internal/domain"

// Re-export domain types for use by adapters
type (
	Board     = domain.Board
	Category  = domain.Category
	Item      = domain.Item
	Utterance = domain.Utterance
)

// EntryKind tells a category entry from an item entry in listings
type EntryKind int

const (
	EntryCategory EntryKind = iota
	EntryItem
)

func (k EntryKind) String() string {
	switch k {
	case EntryCategory:
		return "category"
	case EntryItem:
		return "item"
	default:
		return "unknown"
	}
}

// Entry is one selectable thing on the current screen of a board
type Entry struct {
	Kind  EntryKind
	ID    string
	Label string // Category name or item text
}

// CurrentEntries describes what the board currently shows
func CurrentEntries(b *domain.Board) []Entry {
	if b.AtHome() {
		entries := make([]Entry, 0, b.Len())
		for _, id := range b.CategoryIDs() {
			cat, _ := b.Category(id)
			entries = append(entries, Entry{Kind: EntryCategory, ID: id, Label: cat.Name()})
		}
		return entries
	}

	cat, _ := b.Category(b.CurrentCategoryID())
	items := cat.Items()
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, Entry{Kind: EntryItem, ID: item.ID, Label: item.Text})
	}
	return entries
}
