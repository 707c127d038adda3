package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"aacboard/internal/domain"
	"aacboard/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.SessionStore using SQLite. One database file holds
// the state of one board, keyed by a hash of the board path.
type Store struct {
	db        *sql.DB
	boardPath string
	boardHash string
	dbPath    string
}

// Ensure Store implements SessionStore
var _ ports.SessionStore = (*Store)(nil)

// Option configures the Store
type Option func(*Store)

// WithDatabasePath overrides the default database location
func WithDatabasePath(path string) Option {
	return func(s *Store) {
		s.dbPath = path
	}
}

// NewStore creates a new SQLite session store
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open initializes the store for the given board file
func (s *Store) Open(boardPath string) error {
	if abs, err := filepath.Abs(boardPath); err == nil {
		boardPath = abs
	}
	s.boardPath = boardPath
	s.boardHash = hashBoardPath(boardPath)
	if s.dbPath == "" {
		s.dbPath = databasePath(boardPath)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := sql.Open("sqlite3", s.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS sessions (
			board_hash TEXT PRIMARY KEY,
			board_path TEXT NOT NULL,
			current_category TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_hash TEXT NOT NULL,
			category_id TEXT NOT NULL,
			item_id TEXT NOT NULL,
			text TEXT NOT NULL,
			spoken_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_history_board ON history(board_hash, id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion,
	); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DatabasePath returns the location of the SQLite file
func (s *Store) DatabasePath() string {
	return s.dbPath
}

// CurrentCategory returns the stored category, "" for home or when nothing
// was stored yet
func (s *Store) CurrentCategory() (string, error) {
	var current string
	err := s.db.QueryRow(
		`SELECT current_category FROM sessions WHERE board_hash = ?`,
		s.boardHash,
	).Scan(&current)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return current, nil
}

// SetCurrentCategory stores the category being browsed
func (s *Store) SetCurrentCategory(categoryID string) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (board_hash, board_path, current_category)
		VALUES (?, ?, ?)
		ON CONFLICT(board_hash) DO UPDATE SET current_category = excluded.current_category
	`, s.boardHash, s.boardPath, categoryID)
	return err
}

// RecordSpoken appends a spoken item to the history
func (s *Store) RecordSpoken(categoryID, itemID, text string) error {
	_, err := s.db.Exec(`
		INSERT INTO history (board_hash, category_id, item_id, text, spoken_at)
		VALUES (?, ?, ?, ?, ?)
	`, s.boardHash, categoryID, itemID, text, time.Now().UnixMilli())
	return err
}

// History returns up to limit spoken items, newest first
func (s *Store) History(limit int) ([]domain.Utterance, error) {
	rows, err := s.db.Query(`
		SELECT category_id, item_id, text, spoken_at
		FROM history WHERE board_hash = ?
		ORDER BY id DESC
		LIMIT ?
	`, s.boardHash, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.Utterance
	for rows.Next() {
		var u domain.Utterance
		var spokenAt int64
		if err := rows.Scan(&u.CategoryID, &u.ItemID, &u.Text, &spokenAt); err != nil {
			return nil, err
		}
		u.SpokenAt = time.UnixMilli(spokenAt)
		history = append(history, u)
	}

	return history, rows.Err()
}

// databasePath returns the default path for the SQLite database
func databasePath(boardPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "aacboard", hashBoardPath(boardPath)+".db")
}

// hashBoardPath returns a short hash of the board path
func hashBoardPath(boardPath string) string {
	h := sha256.Sum256([]byte(boardPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}
