package ports

import "aacboard/internal/domain"

// BoardRepository loads and persists a board
type BoardRepository interface {
	// Load reads the board from storage, positioned on the home menu
	Load() (*domain.Board, error)

	// Save writes every category and item of the board.
	// A failed save leaves the previous copy in place.
	Save(board *domain.Board) error

	// Path returns the location of the backing file
	Path() string
}
