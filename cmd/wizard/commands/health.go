package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API connectivity and LLM availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := gw.CheckHealth(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check against %s failed: %w", gw.BaseURL(), err)
			}

			fmt.Printf("Connected to %s (status: %s)\n", gw.BaseURL(), h.Status)
			fmt.Printf("LLM enabled: %v\n", h.LLMEnabled)
			if len(h.AvailableModels) > 0 {
				fmt.Printf("Available models: %s\n", strings.Join(h.AvailableModels, ", "))
			}
			return nil
		},
	}
}
