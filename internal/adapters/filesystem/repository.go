package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aacboard/internal/domain"
	"aacboard/internal/ports"
)

// Repository implements ports.BoardRepository on a single text file
type Repository struct {
	path string
}

// Ensure Repository implements BoardRepository
var _ ports.BoardRepository = (*Repository)(nil)

// NewRepository creates a repository for the board file at path
func NewRepository(path string) *Repository {
	return &Repository{path: ExpandHome(path)}
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// Path returns the board file location
func (r *Repository) Path() string {
	return r.path
}

// Load reads the board file
func (r *Repository) Load() (*domain.Board, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board: %w", err)
	}
	defer f.Close()

	board, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", r.path, err)
	}
	return board, nil
}

// Save writes the board to a temporary file next to the board file and
// renames it into place.
func (r *Repository) Save(board *domain.Board) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create board directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := Encode(tmp, board); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write board: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write board: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set board permissions: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace board: %w", err)
	}

	return nil
}
