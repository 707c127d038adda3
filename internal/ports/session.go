package ports

import "aacboard/internal/domain"

// SessionStore keeps per-board state between runs: where the user was
// browsing and what has been spoken.
type SessionStore interface {
	// Lifecycle
	Open(boardPath string) error
	Close() error

	// Navigation state, "" means the home menu
	CurrentCategory() (string, error)
	SetCurrentCategory(categoryID string) error

	// Spoken history
	RecordSpoken(categoryID, itemID, text string) error
	History(limit int) ([]domain.Utterance, error)
}
