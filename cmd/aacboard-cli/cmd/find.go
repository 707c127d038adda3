package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aacboard/internal/application"
	"aacboard/internal/application/commands"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Fuzzy search category names and item texts",
	Long: `Search the whole board with fuzzy matching. Items are shown with the
category that holds them.

Examples:
  aacboard-cli find shirt
  aacboard-cli find wmln`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := commands.NewFindCommand(GetSession(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found.")
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		for i, r := range results {
			if limit > 0 && i >= limit {
				break
			}
			if r.Kind == application.EntryCategory {
				categoryColor.Fprint(out, r.Label)
				idColor.Fprintf(out, "  %s\n", r.ID)
				continue
			}
			fmt.Fprintf(out, "%s  ", r.Label)
			idColor.Fprintf(out, "%s  (in %s)\n", r.ID, r.CategoryName)
		}
		return nil
	},
}

func init() {
	findCmd.Flags().IntP("limit", "n", 20, "maximum number of results, 0 for all")
	rootCmd.AddCommand(findCmd)
}
