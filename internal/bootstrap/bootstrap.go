// Package bootstrap opens a board session from configuration. The binaries
// differ only in front end and speaker.
package bootstrap

import (
	"errors"
	"io/fs"

	"go.uber.org/zap"

	"aacboard/internal/adapters/filesystem"
	"aacboard/internal/adapters/sqlite"
	"aacboard/internal/application"
	"aacboard/internal/config"
	"aacboard/internal/domain"
	"aacboard/internal/ports"
)

// Session is an opened board session plus what must be closed after it
type Session struct {
	*application.Session
	store *sqlite.Store
}

// Close releases the session store, if one was opened
func (s *Session) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// Open loads the configured board. A board file that does not exist yet
// yields an empty board that saves to that path.
func Open(cfg config.Config, logger *zap.Logger, speaker ports.Speaker) (*Session, error) {
	repo := filesystem.NewRepository(cfg.Board.Path)
	opts := []application.SessionOption{application.WithLogger(logger)}
	if speaker != nil {
		opts = append(opts, application.WithSpeaker(speaker))
	}

	var store *sqlite.Store
	if !cfg.State.Disabled {
		var storeOpts []sqlite.Option
		if cfg.State.Path != "" {
			storeOpts = append(storeOpts, sqlite.WithDatabasePath(filesystem.ExpandHome(cfg.State.Path)))
		}
		store = sqlite.NewStore(storeOpts...)
		if err := store.Open(repo.Path()); err != nil {
			return nil, err
		}
		logger.Debug("session store opened", zap.String("path", store.DatabasePath()))
		opts = append(opts, application.WithStore(store))
	}

	session, err := application.OpenSession(repo, opts...)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("board file does not exist yet, starting empty", zap.String("path", repo.Path()))
		session = application.NewSession(domain.NewBoard(), repo, opts...)
		err = nil
	}
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, err
	}

	return &Session{Session: session, store: store}, nil
}
