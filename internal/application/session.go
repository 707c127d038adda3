package application

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"aacboard/internal/domain"
	"aacboard/internal/ports"
)

// Session owns one loaded board and serialises every access to it. It
// optionally remembers the current category between runs.
type Session struct {
	mu      sync.Mutex
	board   *domain.Board
	repo    ports.BoardRepository
	store   ports.SessionStore
	speaker ports.Speaker
	logger  *zap.Logger
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithStore persists navigation state and spoken history
func WithStore(store ports.SessionStore) SessionOption {
	return func(s *Session) {
		s.store = store
	}
}

// WithSpeaker sets where spoken text goes
func WithSpeaker(speaker ports.Speaker) SessionOption {
	return func(s *Session) {
		s.speaker = speaker
	}
}

// WithLogger sets the session logger
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession wraps an already loaded board
func NewSession(board *domain.Board, repo ports.BoardRepository, opts ...SessionOption) *Session {
	s := &Session{
		board:  board,
		repo:   repo,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenSession loads the board from repo and restores the stored current
// category, if any.
func OpenSession(repo ports.BoardRepository, opts ...SessionOption) (*Session, error) {
	board, err := repo.Load()
	if err != nil {
		return nil, err
	}

	s := NewSession(board, repo, opts...)
	s.logger.Debug("board loaded",
		zap.String("path", repo.Path()),
		zap.Int("categories", board.Len()))

	if err := s.restore(); err != nil {
		return nil, err
	}
	return s, nil
}

// restore moves the board into the category recorded by the store. A
// category that no longer exists leaves the board at home.
func (s *Session) restore() error {
	if s.store == nil {
		return nil
	}

	id, err := s.store.CurrentCategory()
	if err != nil {
		return fmt.Errorf("failed to read session state: %w", err)
	}
	if id == "" {
		return nil
	}

	if !s.board.HasCategory(id) {
		s.logger.Info("stored category no longer exists, starting at home", zap.String("category", id))
		s.persistCurrent()
		return nil
	}
	if _, err := s.board.Select(id); err != nil {
		return fmt.Errorf("failed to restore category %s: %w", id, err)
	}
	return nil
}

// persistCurrent records the current category. Failures are logged: the
// board itself is already updated and stays usable.
func (s *Session) persistCurrent() {
	if s.store == nil {
		return
	}
	if err := s.store.SetCurrentCategory(s.board.CurrentCategoryID()); err != nil {
		s.logger.Warn("failed to persist current category", zap.Error(err))
	}
}

// View runs fn with read access to the board
func (s *Session) View(fn func(b *domain.Board)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.board)
}

// Select selects id on the board. It returns the spoken text and the
// category the selection happened in.
func (s *Session) Select(id string) (text, categoryID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categoryID = s.board.CurrentCategoryID()
	text, err = s.board.Select(id)
	if err != nil {
		return "", categoryID, err
	}
	if text == "" {
		categoryID = s.board.CurrentCategoryID()
		s.persistCurrent()
	}
	return text, categoryID, nil
}

// Reset returns the board to the home menu
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board.Reset()
	s.persistCurrent()
}

// Update runs fn with write access to the board. fn must not navigate;
// use Select and Reset for that.
func (s *Session) Update(fn func(b *domain.Board) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.board)
}

// Save writes the board through the repository
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(s.board); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	s.logger.Debug("board saved", zap.String("path", s.repo.Path()))
	return nil
}

// Reload replaces the board with the repository copy and restores the
// current category when it still exists.
func (s *Session) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, err := s.repo.Load()
	if err != nil {
		return err
	}

	previous := s.board.CurrentCategoryID()
	s.board = board
	if previous != "" && board.HasCategory(previous) {
		if _, err := board.Select(previous); err != nil {
			return fmt.Errorf("failed to restore category %s: %w", previous, err)
		}
	}
	s.persistCurrent()
	return nil
}

// Speaker returns the configured speaker, or nil
func (s *Session) Speaker() ports.Speaker {
	return s.speaker
}

// Store returns the configured session store, or nil
func (s *Session) Store() ports.SessionStore {
	return s.store
}

// Logger returns the session logger
func (s *Session) Logger() *zap.Logger {
	return s.logger
}

// Path returns the board file location
func (s *Session) Path() string {
	return s.repo.Path()
}
