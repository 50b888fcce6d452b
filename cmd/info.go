package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ondrask/gemini-mcp/internal/gemini"
	"github.com/spf13/cobra"
)

var infoJsonFlag bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show resolved Gemini CLI location and settings",
	Long:  `Display where the Gemini CLI resolves to, the active environment overrides, and the subprocess timeout.`,
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJsonFlag, "json", false, "Output as JSON")
}

func runInfo(cmd *cobra.Command, args []string) error {
	bin, err := gemini.LocateBin()
	available := err == nil

	if infoJsonFlag {
		out := map[string]interface{}{
			"available":   available,
			"binary":      bin,
			"env_bin":     os.Getenv(gemini.EnvBin),
			"timeout_sec": defaultTimeoutSec(),
		}
		if !available {
			out["error"] = err.Error()
		}
		data, merr := json.MarshalIndent(out, "", "  ")
		if merr != nil {
			return fmt.Errorf("marshal output: %w", merr)
		}
		fmt.Println(string(data))
		return nil
	}

	if available {
		fmt.Printf("Binary:  %s\n", bin)
	} else {
		fmt.Printf("Binary:  not found (%v)\n", err)
	}
	if v := os.Getenv(gemini.EnvBin); v != "" {
		fmt.Printf("%s:      %s\n", gemini.EnvBin, v)
	}
	fmt.Printf("Timeout: %ds\n", defaultTimeoutSec())
	return nil
}
