package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aacboard/internal/adapters/filesystem"
	"aacboard/internal/application"
	"aacboard/internal/application/commands"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite the board file in canonical form",
	Long: `Load the board and write it back. Lines the loader skips are dropped
and every category is followed by its items.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewSaveCommand(GetSession()).Execute(context.Background())
		if err != nil {
			return err
		}
		successColor.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the board to another file or to stdout",
	Long: `Write the board in the board file format. Without a path, or with "-",
the board goes to stdout.

Examples:
  aacboard-cli export
  aacboard-cli export ~/backup/board.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if len(args) == 0 || args[0] == "-" {
			GetSession().View(func(b *application.Board) {
				err = filesystem.Encode(cmd.OutOrStdout(), b)
			})
			return err
		}

		repo := filesystem.NewRepository(args[0])
		GetSession().View(func(b *application.Board) {
			err = repo.Save(b)
		})
		if err != nil {
			return fmt.Errorf("failed to export board: %w", err)
		}
		successColor.Fprintf(cmd.OutOrStdout(), "Exported %s\n", repo.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd, exportCmd)
}
