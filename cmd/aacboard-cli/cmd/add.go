package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aacboard/internal/application"
	"aacboard/internal/application/commands"
)

var addCmd = &cobra.Command{
	Use:   "add <id> <text...>",
	Short: "Add a category or an item",
	Long: `Add to the board and save it.

At home this creates a category named by text. Inside a category it adds an
item spoken as text. Replacing an existing category drops its items and
needs --force.

Examples:
  aacboard-cli add img/toys/box.png toys
  aacboard-cli select img/toys/box.png
  aacboard-cli add img/toys/ball.png red ball`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		add := commands.NewAddItemCommand(GetSession(), args[0], strings.Join(args[1:], " "))
		add.Force, _ = cmd.Flags().GetBool("force")

		result, err := add.Execute(ctx)
		if err != nil {
			var oe *application.OverwriteError
			if errors.As(err, &oe) {
				return fmt.Errorf("%w (use --force to replace it)", err)
			}
			return err
		}

		if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
			if _, err := commands.NewSaveCommand(GetSession()).Execute(ctx); err != nil {
				return err
			}
		}

		if result.Overwritten {
			warnColor.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		}
		successColor.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	addCmd.Flags().BoolP("force", "f", false, "replace an existing category")
	addCmd.Flags().Bool("no-save", false, "do not write the board file")
	rootCmd.AddCommand(addCmd)
}
