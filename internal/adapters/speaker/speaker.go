// Package speaker contains the places spoken text can go. None of them
// synthesise audio; they hand the text to whatever reads it aloud.
package speaker

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"aacboard/internal/ports"
)

var (
	_ ports.Speaker = (*Writer)(nil)
	_ ports.Speaker = (*Clipboard)(nil)
	_ ports.Speaker = Multi(nil)
)

// Writer prints each spoken text on its own line
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) Speak(text string) error {
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(s.w, text)
	return err
}

// Clipboard copies spoken text to the system clipboard
type Clipboard struct {
	write func(string) error
}

func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

func (s *Clipboard) Speak(text string) error {
	if text == "" {
		return nil
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Multi speaks through every speaker and joins their errors
type Multi []ports.Speaker

func (m Multi) Speak(text string) error {
	if text == "" {
		return nil
	}
	var errs []error
	for _, s := range m {
		if err := s.Speak(text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
