package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aacboard/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List what the board shows",
	Long: `List the current screen of the board: the categories at home, or the
items of the open category.

Examples:
  aacboard-cli list
  aacboard-cli list --ids`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewListCommand(GetSession()).Execute(context.Background())
		if err != nil {
			return err
		}

		idsOnly, _ := cmd.Flags().GetBool("ids")
		out := cmd.OutOrStdout()
		for _, e := range result.Entries {
			if idsOnly {
				fmt.Fprintln(out, e.ID)
				continue
			}
			fmt.Fprintf(out, "%s %s\n", e.ID, e.Label)
		}
		return nil
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the open category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewListCommand(GetSession()).Execute(context.Background())
		if err != nil {
			return err
		}
		if result.AtHome {
			fmt.Fprintln(cmd.OutOrStdout(), "home")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", result.CategoryID, result.CategoryName)
		return nil
	},
}

var selectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Select an item or a category",
	Long: `Select an ID. An item of the open category is spoken; a category is
opened and nothing is spoken.

Examples:
  aacboard-cli select img/food/plate.png
  aacboard-cli select img/food/fries.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewSelectCommand(GetSession(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		// Spoken text is printed by the speaker
		if result.Navigated() {
			successColor.Fprintln(cmd.OutOrStdout(), result.Message)
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Go back to the home menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewResetCommand(GetSession()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var hasCmd = &cobra.Command{
	Use:   "has <id>",
	Short: "Check whether an ID is anywhere on the board",
	Long: `Check whether an ID is a category or an item of any category. Prints
true or false; exits with status 1 when the ID is absent and --quiet is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		found, err := commands.NewHasItemCommand(GetSession(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			if !found {
				return fmt.Errorf("%s: not on the board", args[0])
			}
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), found)
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("ids", false, "print IDs only")
	hasCmd.Flags().BoolP("quiet", "q", false, "print nothing, report through the exit status")

	rootCmd.AddCommand(listCmd, currentCmd, selectCmd, resetCmd, hasCmd)
}
