package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentbank/foundry/internal/validate"
	"github.com/agentbank/foundry/internal/wizard"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <use case text>",
		Short: "Run the full interpret, generate, process, report flow",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			ctx := cmd.Context()

			ctrl := wizard.NewController(gw, sampleSize)
			defer ctrl.Close()

			interp, err := ctrl.Interpret(ctx, text)
			if errors.Is(err, wizard.ErrInvalidUseCase) {
				fmt.Println("Use case rejected. Mention one of the recognized banking terms:")
				fmt.Println("  " + strings.Join(validate.Keywords(), ", "))
				return err
			}
			if err != nil {
				return fmt.Errorf("interpretation failed: %w", err)
			}
			fmt.Printf("[1/4] Interpreted as %s (confidence %.2f, via %s)\n",
				interp.DataProduct, interp.Confidence, interp.UsedLLM)
			fmt.Printf("      %s\n", interp.Reasoning)

			dataset, err := ctrl.Generate(ctx)
			if err != nil {
				return fmt.Errorf("data generation failed: %w", err)
			}
			fmt.Printf("[2/4] Generated %d records\n", dataset.RecordsGenerated)
			if len(dataset.CustomerIDs) == 0 {
				return fmt.Errorf("dataset contains no customers; nothing to process")
			}
			selected := ctrl.Snapshot().SelectedCustomerID
			fmt.Printf("      Processing customer %s\n", selected)

			processing, err := ctrl.Process(ctx)
			if err != nil {
				return fmt.Errorf("customer processing failed: %w", err)
			}
			fmt.Printf("[3/4] Mapped %d fields, ingestion %s\n",
				processing.MappingReport.MappedFields, processing.IngestionReport.Status)
			if cert := processing.CertificationReport; cert != nil {
				fmt.Printf("      Certification: %s (score %.2f)\n",
					cert.CertificationStatus, cert.OverallScore)
			}

			links, err := ctrl.Report(ctx)
			if err != nil {
				return fmt.Errorf("report generation failed: %w", err)
			}
			fmt.Printf("[4/4] Reports ready:\n")
			fmt.Printf("      JSON: %s\n", gw.ResolveReport(links.JSONReportURL))
			fmt.Printf("      CSV:  %s\n", gw.ResolveReport(links.CSVExportURL))
			return nil
		},
	}
}
