package commands

import (
	"github.com/spf13/cobra"

	"github.com/agentbank/foundry/internal/client"
)

var (
	apiBase    string
	sampleSize int

	gw *client.Gateway
)

func Execute() error {
	root := &cobra.Command{
		Use:   "wizard",
		Short: "Drive the four-step synthetic banking data flow against a foundry server",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			gw = client.New(apiBase)
		},
	}

	root.PersistentFlags().StringVar(&apiBase, "api", "http://localhost:5000", "API base URL")
	root.PersistentFlags().IntVar(&sampleSize, "sample-size", 10, "number of synthetic records to generate")

	root.AddCommand(healthCmd(), validateCmd(), runCmd())
	return root.Execute()
}
