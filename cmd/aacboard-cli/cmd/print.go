package cmd

import "github.com/fatih/color"

// Output colors. color disables itself when stdout is not a terminal or
// NO_COLOR is set.
var (
	categoryColor = color.New(color.FgCyan, color.Bold)
	itemColor     = color.New(color.Reset)
	idColor       = color.New(color.FgHiBlack)
	successColor  = color.New(color.FgGreen)
	warnColor     = color.New(color.FgYellow)
)
