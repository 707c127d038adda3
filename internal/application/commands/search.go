package commands

import (
	"context"
	"sort"
	"strings"

	"aacboard/internal/application"
)

// FindResult is one board entry matching a query
type FindResult struct {
	Kind         application.EntryKind
	ID           string
	Label        string // Category name or item text
	CategoryID   string // Owning category for items, the category itself otherwise
	CategoryName string
	Score        int
}

// FindCommand searches category names and item texts with fuzzy matching
type FindCommand struct {
	session *application.Session
	Query   string
}

// NewFindCommand creates a new FindCommand
func NewFindCommand(session *application.Session, query string) *FindCommand {
	return &FindCommand{
		session: session,
		Query:   query,
	}
}

// Execute runs the find command and returns scored, sorted results
func (c *FindCommand) Execute(ctx context.Context) ([]FindResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	var candidates []FindResult
	c.session.View(func(b *application.Board) {
		for _, id := range b.CategoryIDs() {
			cat, _ := b.Category(id)
			candidates = append(candidates, FindResult{
				Kind:         application.EntryCategory,
				ID:           id,
				Label:        cat.Name(),
				CategoryID:   id,
				CategoryName: cat.Name(),
			})
			for _, item := range cat.Items() {
				candidates = append(candidates, FindResult{
					Kind:         application.EntryItem,
					ID:           item.ID,
					Label:        item.Text,
					CategoryID:   id,
					CategoryName: cat.Name(),
				})
			}
		}
	})

	return FuzzySort(candidates, c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '/' || target[i-1] == '.' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores candidates against the query, drops non-matches and
// sorts by score descending. Ties keep board order.
func FuzzySort(candidates []FindResult, query string) []FindResult {
	scored := make([]FindResult, 0, len(candidates))

	for _, r := range candidates {
		best := max(FuzzyScore(r.Label, query), FuzzyScore(r.ID, query))
		if best > 0 {
			r.Score = best
			scored = append(scored, r)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
