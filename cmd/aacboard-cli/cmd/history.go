package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aacboard/internal/application/commands"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently spoken items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		history, err := commands.NewHistoryCommand(GetSession(), limit).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if GetSession().Store() == nil {
			warnColor.Fprintln(out, "History is off (--no-state)")
			return nil
		}
		for _, u := range history {
			idColor.Fprintf(out, "%s  ", u.SpokenAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintln(out, u.Text)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "number of entries")
	rootCmd.AddCommand(historyCmd)
}
