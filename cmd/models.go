package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ondrask/gemini-mcp/internal/gemini"
	"github.com/spf13/cobra"
)

var modelsJsonFlag bool

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show known Gemini models and their fallback order",
	Args:  cobra.NoArgs,
	RunE:  runModels,
}

func init() {
	modelsCmd.Flags().BoolVar(&modelsJsonFlag, "json", false, "Output as JSON")
}

func runModels(cmd *cobra.Command, args []string) error {
	if modelsJsonFlag {
		data, err := json.MarshalIndent(gemini.DefaultModels, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(gemini.ModelInfo())
	return nil
}
