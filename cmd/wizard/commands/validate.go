package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentbank/foundry/internal/validate"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <use case text>",
		Short: "Check whether text passes the banking keyword gate (local, no API call)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if validate.UseCase(text) {
				fmt.Println("Accepted: the text mentions a recognized banking term.")
				return nil
			}

			fmt.Println("Rejected: no banking term found. Recognized keywords:")
			fmt.Println("  " + strings.Join(validate.Keywords(), ", "))
			return fmt.Errorf("use case rejected")
		},
	}
}
