package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aacboard/internal/adapters/speaker"
	"aacboard/internal/application"
	"aacboard/internal/bootstrap"
	"aacboard/internal/config"
	"aacboard/internal/logging"
	"aacboard/internal/ports"
)

var (
	boardPath string
	statePath string
	noState   bool
	clipboard bool
	verbose   bool

	logger  *zap.Logger
	session *bootstrap.Session
)

var rootCmd = &cobra.Command{
	Use:   "aacboard-cli",
	Short: "CLI for AAC communication boards",
	Long: `aacboard-cli drives an AAC board stored in a plain text file.

Home lists the categories. Selecting a category opens it; selecting an item
inside the open category speaks its text. The open category is remembered
between invocations.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd)
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	teardown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&boardPath, "board", "b", "", "path to the board file (default from config)")
	flags.StringVar(&statePath, "state", "", "path to the session database")
	flags.BoolVar(&noState, "no-state", false, "do not remember the open category or spoken history")
	flags.BoolVar(&clipboard, "clipboard", false, "also copy spoken text to the clipboard")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

// setup merges flags over the config file and opens the board session
func setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("board") {
		cfg.Board.Path = boardPath
	}
	if flags.Changed("state") {
		cfg.State.Path = statePath
	}
	if flags.Changed("no-state") {
		cfg.State.Disabled = noState
	}
	if flags.Changed("clipboard") {
		cfg.Speak.Clipboard = clipboard
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbose = verbose
	}

	logger, err = logging.New(cfg.Log.Verbose)
	if err != nil {
		return err
	}

	session, err = bootstrap.Open(cfg, logger, newSpeaker(cmd, cfg.Speak.Clipboard))
	return err
}

func teardown() {
	if session != nil {
		if err := session.Close(); err != nil {
			logger.Warn("failed to close session store", zap.Error(err))
		}
		session = nil
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

func newSpeaker(cmd *cobra.Command, withClipboard bool) ports.Speaker {
	out := speaker.NewWriter(cmd.OutOrStdout())
	if !withClipboard {
		return out
	}
	return speaker.Multi{out, speaker.NewClipboard()}
}

// GetSession returns the session opened for the running command
func GetSession() *application.Session {
	return session.Session
}
