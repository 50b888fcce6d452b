package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/ondrask/gemini-mcp/internal/gemini"
	"github.com/ondrask/gemini-mcp/internal/mcp"
	"github.com/spf13/cobra"
)

var serveTimeoutFlag int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Run the MCP server, speaking JSON-RPC on stdin/stdout.

Exposes three tools: web_search, code_review, and model_info. Logs go to
stderr. Intended to be launched by an MCP client, e.g.:

  {"command": "gemini-mcp", "args": ["serve"]}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&serveTimeoutFlag, "timeout", defaultTimeoutSec(),
		"Max seconds per Gemini subprocess")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger(slog.LevelInfo)

	if !gemini.BinAvailable() {
		logger.Warn("gemini executable not found; tool calls will fail until it is installed",
			"env", gemini.EnvBin)
	}

	svc := gemini.NewService(
		gemini.WithTimeout(time.Duration(serveTimeoutFlag)*time.Second),
		gemini.WithLogger(logger),
	)
	server := mcp.NewServer(svc, Version, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx)
}
