package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"aacboard/internal/application/commands"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display every category with its items",
	Long: `Display the whole board, category by category.

Example:
  aacboard-cli tree`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := commands.NewTreeCommand(GetSession()).Execute(context.Background())
		if err != nil {
			return err
		}
		printTree(cmd.OutOrStdout(), tree)
		return nil
	},
}

func printTree(w io.Writer, tree []commands.TreeCategory) {
	for _, cat := range tree {
		categoryColor.Fprint(w, cat.Name)
		idColor.Fprintf(w, "  %s\n", cat.ID)
		for _, item := range cat.Items {
			itemColor.Fprintf(w, "  %s", item.Text)
			idColor.Fprintf(w, "  %s\n", item.ID)
		}
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
