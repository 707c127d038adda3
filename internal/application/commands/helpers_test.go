package commands

import (
	"errors"
	"strings"
	"testing"
	"time"

	"aacboard/internal/adapters/filesystem"
	"aacboard/internal/application"
	"aacboard/internal/domain"
)

const testBoard = `img/food/plate.png food
>img/food/fries.png french fries
>img/food/watermelon.png watermelon
img/clothing/hanger.png clothing
>img/clothing/shirt.png collared shirt
`

// memoryRepo keeps the board file in memory
type memoryRepo struct {
	content string
	saveErr error
	saves   int
}

func (r *memoryRepo) Load() (*domain.Board, error) {
	return filesystem.Decode(strings.NewReader(r.content))
}

func (r *memoryRepo) Save(b *domain.Board) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	var sb strings.Builder
	if err := filesystem.Encode(&sb, b); err != nil {
		return err
	}
	r.content = sb.String()
	r.saves++
	return nil
}

func (r *memoryRepo) Path() string {
	return "memory://board.txt"
}

// memoryStore implements ports.SessionStore in memory
type memoryStore struct {
	current string
	history []domain.Utterance
	failSet bool
}

func (s *memoryStore) Open(string) error { return nil }
func (s *memoryStore) Close() error      { return nil }

func (s *memoryStore) CurrentCategory() (string, error) {
	return s.current, nil
}

func (s *memoryStore) SetCurrentCategory(id string) error {
	if s.failSet {
		return errors.New("store unavailable")
	}
	s.current = id
	return nil
}

func (s *memoryStore) RecordSpoken(categoryID, itemID, text string) error {
	s.history = append(s.history, domain.Utterance{
		CategoryID: categoryID,
		ItemID:     itemID,
		Text:       text,
		SpokenAt:   time.Now(),
	})
	return nil
}

func (s *memoryStore) History(limit int) ([]domain.Utterance, error) {
	var out []domain.Utterance
	for i := len(s.history) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.history[i])
	}
	return out, nil
}

// recordingSpeaker remembers everything it was asked to say
type recordingSpeaker struct {
	said []string
	err  error
}

func (s *recordingSpeaker) Speak(text string) error {
	if s.err != nil {
		return s.err
	}
	s.said = append(s.said, text)
	return nil
}

func newTestSession(t *testing.T, opts ...application.SessionOption) (*application.Session, *memoryRepo, *memoryStore) {
	t.Helper()

	repo := &memoryRepo{content: testBoard}
	store := &memoryStore{}
	opts = append([]application.SessionOption{application.WithStore(store)}, opts...)

	session, err := application.OpenSession(repo, opts...)
	if err != nil {
		t.Fatalf("OpenSession failed: %v", err)
	}
	return session, repo, store
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
