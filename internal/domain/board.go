package domain

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Board is a two-level AAC board: a top-level menu of categories, each
// holding items that speak text when selected. The board tracks which
// category is being browsed.
//
// A Board is not safe for concurrent use.
type Board struct {
	categories *orderedmap.OrderedMap[string, *Category]
	home       *Category
	current    *Category
}

// NewBoard creates an empty board positioned on the home menu
func NewBoard() *Board {
	home := NewCategory("")
	return &Board{
		categories: orderedmap.New[string, *Category](),
		home:       home,
		current:    home,
	}
}

// AtHome reports whether no category is active
func (b *Board) AtHome() bool {
	return b.current == b.home
}

// Select acts on id in the context of the current category.
//
// An item of the current category returns its text and leaves the state
// alone. Otherwise id must name a category other than the current one: the
// board moves into it and returns "". Anything else is a NotFoundError.
func (b *Board) Select(id string) (string, error) {
	if !b.AtHome() && b.current.HasItem(id) {
		return b.current.Select(id)
	}

	target, ok := b.categories.Get(id)
	if !ok || target == b.current {
		return "", notFound(id)
	}
	b.current = target
	return "", nil
}

// Reset returns the board to the home menu
func (b *Board) Reset() {
	b.current = b.home
}

// ListCurrent returns the category ids when at home, otherwise the item ids
// of the current category. Both are in insertion order.
func (b *Board) ListCurrent() []string {
	if b.AtHome() {
		return b.CategoryIDs()
	}
	return b.current.ItemIDs()
}

// AddItem adds to whatever is being browsed. At home it registers a new
// category under id named text, replacing any category already stored
// under id together with its items. Inside a category it adds an item.
func (b *Board) AddItem(id, text string) {
	if b.AtHome() {
		b.categories.Set(id, NewCategory(text))
		return
	}
	b.current.AddItem(id, text)
}

// CurrentCategoryName returns the name of the current category, "" at home
func (b *Board) CurrentCategoryName() string {
	return b.current.Name()
}

// CurrentCategoryID returns the key of the current category, "" at home
func (b *Board) CurrentCategoryID() string {
	if b.AtHome() {
		return ""
	}
	for pair := b.categories.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == b.current {
			return pair.Key
		}
	}
	return ""
}

// HasItem reports whether id is a category key or an item of any category,
// regardless of which category is current.
func (b *Board) HasItem(id string) bool {
	if _, ok := b.categories.Get(id); ok {
		return true
	}
	for pair := b.categories.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.HasItem(id) {
			return true
		}
	}
	return false
}

// HasCategory reports whether id is a category key
func (b *Board) HasCategory(id string) bool {
	_, ok := b.categories.Get(id)
	return ok
}

// Category returns the category stored under id
func (b *Board) Category(id string) (*Category, bool) {
	return b.categories.Get(id)
}

// CategoryIDs returns the category keys in insertion order
func (b *Board) CategoryIDs() []string {
	ids := make([]string, 0, b.categories.Len())
	for pair := b.categories.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// Len returns the number of categories
func (b *Board) Len() int {
	return b.categories.Len()
}
