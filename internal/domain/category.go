package domain

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Item is one entry of a category as returned by listings
type Item struct {
	ID   string
	Text string
}

// Category is a named, flat collection of items. Each item maps an
// identifier (usually an image location) to the text it speaks.
type Category struct {
	name  string
	items *orderedmap.OrderedMap[string, string]
}

// NewCategory creates an empty category with the given name
func NewCategory(name string) *Category {
	return &Category{
		name:  name,
		items: orderedmap.New[string, string](),
	}
}

// Name returns the display name of the category
func (c *Category) Name() string {
	return c.name
}

// AddItem maps id to text. An existing id keeps its position and takes the
// new text.
func (c *Category) AddItem(id, text string) {
	c.items.Set(id, text)
}

// ItemIDs returns the item identifiers in insertion order
func (c *Category) ItemIDs() []string {
	ids := make([]string, 0, c.items.Len())
	for pair := c.items.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// Items returns the id/text pairs in insertion order
func (c *Category) Items() []Item {
	items := make([]Item, 0, c.items.Len())
	for pair := c.items.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, Item{ID: pair.Key, Text: pair.Value})
	}
	return items
}

// HasItem reports whether id is an item of this category
func (c *Category) HasItem(id string) bool {
	_, ok := c.items.Get(id)
	return ok
}

// Select returns the text for id, or a NotFoundError if the category has no
// such item.
func (c *Category) Select(id string) (string, error) {
	text, ok := c.items.Get(id)
	if !ok {
		return "", notFound(id)
	}
	return text, nil
}

// Len returns the number of items
func (c *Category) Len() int {
	return c.items.Len()
}
