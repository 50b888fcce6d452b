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

var reviewCmd = &cobra.Command{
	Use:   "review <file> <query>",
	Short: "Review a local file via the Gemini CLI",
	Long: `Send a file to the Gemini CLI with an instruction and print the answer.

The file must live under the current working directory and contain valid
UTF-8 text. Content is piped over stdin, so large files never appear in
the process listing.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runReview,
}

var (
	reviewModelFlag   string
	reviewToolsFlag   string
	reviewTimeoutFlag int
	reviewJsonFlag    bool
)

func init() {
	reviewCmd.Flags().StringVar(&reviewModelFlag, "model", "", "Gemini model to try first")
	reviewCmd.Flags().StringVar(&reviewToolsFlag, "allowed-tools", gemini.DefaultReviewTools,
		"Tool set the Gemini CLI may use")
	reviewCmd.Flags().IntVar(&reviewTimeoutFlag, "timeout", defaultTimeoutSec(),
		"Max seconds per Gemini subprocess")
	reviewCmd.Flags().BoolVar(&reviewJsonFlag, "json", false, "Output as JSON")
}

func runReview(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	query := strings.Join(args[1:], " ")

	svc := gemini.NewService(
		gemini.WithTimeout(time.Duration(reviewTimeoutFlag)*time.Second),
		gemini.WithLogger(newLogger(slog.LevelWarn)),
	)

	output, err := svc.CodeReview(context.Background(), filePath, query, reviewModelFlag, reviewToolsFlag)
	if err != nil {
		return err
	}

	if reviewJsonFlag {
		out := map[string]interface{}{
			"file":   filePath,
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
