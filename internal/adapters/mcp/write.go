package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"aacboard/internal/application"
	"aacboard/internal/application/commands"
)

// RegisterWriteTools adds the tools that change the board or its state.
func RegisterWriteTools(s *server.MCPServer, session *application.Session) {
	s.AddTool(selectTool(), selectHandler(session))
	s.AddTool(resetTool(), resetHandler(session))
	s.AddTool(addItemTool(), addItemHandler(session))
	s.AddTool(saveTool(), saveHandler(session))
}

// --- select ---

func selectTool() mcp.Tool {
	return mcp.NewTool("select",
		mcp.WithDescription("Select an ID. An item of the current category is spoken and its text returned; a category is opened and nothing is spoken."),
		mcp.WithString("id",
			mcp.Description("Item ID in the current category, or a category ID"),
			mcp.Required(),
		),
	)
}

func selectHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		result, err := commands.NewSelectCommand(session, id).Execute(ctx)
		if err != nil && result == nil {
			return toolError(err)
		}
		// A failed speaker still selected the item; report the text anyway.
		if err != nil {
			return mcp.NewToolResultText(fmt.Sprintf("%s\n(warning: %v)", result.Message, err)), nil
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- reset ---

func resetTool() mcp.Tool {
	return mcp.NewTool("reset",
		mcp.WithDescription("Return the board to the home menu."),
	)
}

func resetHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewResetCommand(session).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_item ---

func addItemTool() mcp.Tool {
	return mcp.NewTool("add_item",
		mcp.WithDescription("Add to the board. At home this creates a category named by text; inside a category it adds an item spoken as text. Changes are kept in memory until save."),
		mcp.WithString("id",
			mcp.Description("ID without whitespace (e.g. img/food/soup.png)"),
			mcp.Required(),
		),
		mcp.WithString("text",
			mcp.Description("Category name or spoken text"),
			mcp.Required(),
		),
		mcp.WithBoolean("force",
			mcp.Description("Replace an existing category and drop its items"),
		),
	)
}

func addItemHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddItemCommand(session, req.GetString("id", ""), req.GetString("text", ""))
		cmd.Force = req.GetBool("force", false)

		result, err := cmd.Execute(ctx)
		if err != nil {
			var oe *application.OverwriteError
			if errors.As(err, &oe) {
				return toolError(fmt.Errorf("%w; pass force=true to replace it", err))
			}
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- save ---

func saveTool() mcp.Tool {
	return mcp.NewTool("save",
		mcp.WithDescription("Write the board back to its file."),
	)
}

func saveHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewSaveCommand(session).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
