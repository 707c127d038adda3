package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const DefaultBoardPath = "~/.config/aacboard/board.txt"

// Config holds application configuration.
type Config struct {
	Board BoardConfig
	State StateConfig
	Speak SpeakConfig
	Log   LogConfig
}

// BoardConfig locates the board file.
type BoardConfig struct {
	Path string
}

// StateConfig holds sqlite settings. An empty path means one database per
// board under the XDG data directory.
type StateConfig struct {
	Path     string
	Disabled bool
}

type SpeakConfig struct {
	Clipboard bool
}

type LogConfig struct {
	Verbose bool
}

// Load reads configuration from file and env. Env var overrides use prefix AACBOARD_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("board.path", DefaultBoardPath)
	v.SetDefault("state.path", "")
	v.SetDefault("state.disabled", false)
	v.SetDefault("speak.clipboard", false)
	v.SetDefault("log.verbose", false)

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("AACBOARD_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AACBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional unless named explicitly
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if os.Getenv("AACBOARD_CONFIG") != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// BoardPath returns the board path from AACBOARD_BOARD_PATH,
// falling back to DefaultBoardPath.
func BoardPath() string {
	if env := os.Getenv("AACBOARD_BOARD_PATH"); env != "" {
		return env
	}
	return DefaultBoardPath
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "aacboard")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "aacboard")
}
