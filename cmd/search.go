package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ondrask/gemini-mcp/internal/gemini"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Perform a web search via the Gemini CLI",
	Long: `Perform a web search and print the answer.

The query is sanitized and wrapped before it reaches the Gemini CLI. On
quota or capacity errors the next known model is tried automatically; use
--model to pick which one goes first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

var (
	searchModelFlag   string
	searchToolsFlag   string
	searchTimeoutFlag int
	searchJsonFlag    bool
)

func init() {
	searchCmd.Flags().StringVar(&searchModelFlag, "model", "", "Gemini model to try first")
	searchCmd.Flags().StringVar(&searchToolsFlag, "allowed-tools", gemini.DefaultSearchTools,
		"Tool set the Gemini CLI may use")
	searchCmd.Flags().IntVar(&searchTimeoutFlag, "timeout", defaultTimeoutSec(),
		"Max seconds per Gemini subprocess")
	searchCmd.Flags().BoolVar(&searchJsonFlag, "json", false, "Output as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	svc := gemini.NewService(
		gemini.WithTimeout(time.Duration(searchTimeoutFlag)*time.Second),
		gemini.WithLogger(newLogger(slog.LevelWarn)),
	)

	output, err := svc.WebSearch(context.Background(), query, searchModelFlag, searchToolsFlag)
	if err != nil {
		return err
	}

	if searchJsonFlag {
		out := map[string]interface{}{
			"query":  query,
			"output": output,
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(data))
	} else {
		fmt.Print(output)
	}

	return nil
}
