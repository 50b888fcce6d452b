package cmd

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gemini-mcp",
	Short: "Gemini CLI research tools over MCP",
	Long: `gemini-mcp wraps the Gemini CLI and exposes its web search and code
review capabilities as MCP tools and as direct shell commands.

Quick start:
  gemini-mcp serve                          # Run the MCP server on stdio
  gemini-mcp search "latest Go release"     # Web search from the shell
  gemini-mcp review main.go "find bugs"     # Review a file
  gemini-mcp models                         # Show known models`,
}

var verboseFlag bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Log subprocess attempts to stderr")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the shared stderr logger. Stdout must stay clean: the
// serve command speaks JSON-RPC on it.
func newLogger(level slog.Level) *slog.Logger {
	if verboseFlag {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

const envTimeout = "GEMINI_MCP_TIMEOUT"

// defaultTimeoutSec is the per-subprocess timeout in seconds, overridable
// via GEMINI_MCP_TIMEOUT.
func defaultTimeoutSec() int {
	if v := os.Getenv(envTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 120
}
