package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"default is info", false, false},
		{"verbose enables debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.verbose)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if got := logger.Core().Enabled(-1); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestNewFile(t *testing.T) {
	t.Run("empty path is a no-op logger", func(t *testing.T) {
		logger, err := NewFile("", true)
		if err != nil {
			t.Fatalf("NewFile failed: %v", err)
		}
		if logger.Core().Enabled(0) {
			t.Error("no-op logger should not be enabled")
		}
	})

	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aacboard.log")
		logger, err := NewFile(path, false)
		if err != nil {
			t.Fatalf("NewFile failed: %v", err)
		}
		logger.Info("board loaded")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log: %v", err)
		}
		if !strings.Contains(string(data), "board loaded") {
			t.Errorf("log file missing entry: %s", data)
		}
	})
}
