package ports

import "os/exec"

// EditorOpener opens the board file in an external editor
type EditorOpener interface {
	// OpenFile runs the editor on path and waits for it to exit
	OpenFile(path string) error

	// Command returns the editor process without starting it, for
	// bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
