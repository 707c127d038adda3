package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "aacboard/internal/adapters/mcp"
	"aacboard/internal/bootstrap"
	"aacboard/internal/config"
	"aacboard/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "aacboard-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	boardFlag := flag.String("board", cfg.Board.Path, "path to the board file")
	verboseFlag := flag.Bool("verbose", cfg.Log.Verbose, "debug logging on stderr")
	flag.Parse()

	// stdout carries the MCP protocol, logs go to stderr
	logger, err := logging.New(*verboseFlag)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg.Board.Path = *boardFlag

	session, err := bootstrap.Open(cfg, logger, nil)
	if err != nil {
		return err
	}
	defer session.Close()

	mcpServer := server.NewMCPServer(
		"aacboard-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, session.Session)
	mcpadapter.RegisterWriteTools(mcpServer, session.Session)

	logger.Info("serving board over stdio", zap.String("path", session.Path()))
	return server.ServeStdio(mcpServer)
}
