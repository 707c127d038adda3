package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"aacboard/internal/adapters/editor"
	"aacboard/internal/adapters/speaker"
	"aacboard/internal/adapters/tui"
	"aacboard/internal/bootstrap"
	"aacboard/internal/config"
	"aacboard/internal/logging"
	"aacboard/internal/ports"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	boardFlag := flag.String("board", cfg.Board.Path, "path to the board file")
	logFlag := flag.String("log", "", "write logs to this file")
	flag.Parse()

	logger, err := logging.NewFile(*logFlag, cfg.Log.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg.Board.Path = *boardFlag

	// The banner shows spoken text; the clipboard hands it to a screen reader
	var spk ports.Speaker
	if cfg.Speak.Clipboard {
		spk = speaker.NewClipboard()
	}

	session, err := bootstrap.Open(cfg, logger, spk)
	if err != nil {
		return err
	}
	defer session.Close()

	app := tui.NewApp(session.Session, editor.NewOpener())
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
