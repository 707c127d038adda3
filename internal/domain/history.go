package domain

import "time"

// Utterance is one spoken selection recorded by a session store
type Utterance struct {
	CategoryID string // Key of the category the item was spoken from
	ItemID     string
	Text       string
	SpokenAt   time.Time
}
