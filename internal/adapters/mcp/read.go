package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"aacboard/internal/application"
	"aacboard/internal/application/commands"
)

// RegisterReadTools adds the tools that only look at the board.
func RegisterReadTools(s *server.MCPServer, session *application.Session) {
	s.AddTool(listTool(), listHandler(session))
	s.AddTool(currentTool(), currentHandler(session))
	s.AddTool(hasItemTool(), hasItemHandler(session))
	s.AddTool(findTool(), findHandler(session))
	s.AddTool(treeTool(), treeHandler(session))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List what the board shows right now. At home these are the categories; inside a category they are its items. Each line is an ID followed by its label."),
	)
}

func listHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewListCommand(session).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(result.Entries, formatEntry)
	}
}

// --- current ---

func currentTool() mcp.Tool {
	return mcp.NewTool("current",
		mcp.WithDescription("Show the category the board is in, or home."),
	)
}

func currentHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewListCommand(session).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.AtHome {
			return mcp.NewToolResultText("home"), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s  %s", result.CategoryID, result.CategoryName)), nil
	}
}

// --- has_item ---

func hasItemTool() mcp.Tool {
	return mcp.NewTool("has_item",
		mcp.WithDescription("Check whether an ID exists anywhere on the board, as a category or as an item of any category."),
		mcp.WithString("id",
			mcp.Description("Category or item ID (e.g. img/food/fries.png)"),
			mcp.Required(),
		),
	)
}

func hasItemHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		found, err := commands.NewHasItemCommand(session, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%t", found)), nil
	}
}

// --- find ---

func findTool() mcp.Tool {
	return mcp.NewTool("find",
		mcp.WithDescription("Fuzzy search category names and item texts across the whole board."),
		mcp.WithString("query",
			mcp.Description("Search query, at least two characters"),
			mcp.Required(),
		),
	)
}

func findHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewFindCommand(session, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			if r.Kind == application.EntryItem {
				fmt.Fprintf(&sb, "%s  %s  (in %s)\n", r.ID, r.Label, r.CategoryName)
				continue
			}
			fmt.Fprintf(&sb, "%s  %s\n", r.ID, r.Label)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display every category with its items."),
	)
}

func treeHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tree, err := commands.NewTreeCommand(session).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(tree) == 0 {
			return mcp.NewToolResultText("No results."), nil
		}
		var sb strings.Builder
		renderTree(&sb, tree)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, tree []commands.TreeCategory) {
	for _, cat := range tree {
		fmt.Fprintf(sb, "%s %s\n", cat.ID, cat.Name)
		for _, item := range cat.Items {
			fmt.Fprintf(sb, "  %s %s\n", item.ID, item.Text)
		}
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatEntry(e application.Entry) string {
	return fmt.Sprintf("%s  %s", e.ID, e.Label)
}
