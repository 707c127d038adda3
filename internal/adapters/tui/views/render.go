package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"aacboard/internal/adapters/tui/styles"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders key bindings separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a status message, red for errors
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// renderSection renders a help section: a heading followed by key rows
func renderSection(title string, rows ...key.Binding) string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(title))
	b.WriteString("\n")
	for _, row := range rows {
		help := row.Help()
		b.WriteString("  ")
		b.WriteString(styles.HelpKey.Render(padRight(help.Key, 16)))
		b.WriteString(styles.HelpDesc.Render(help.Desc))
		b.WriteString("\n")
	}
	return b.String()
}

func padRight(s string, length int) string {
	if n := len([]rune(s)); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}
