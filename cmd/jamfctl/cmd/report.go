package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jamfctl/jamfctl/internal/cli/output"
	"github.com/jamfctl/jamfctl/internal/interrogate"
)

func newReportCmd(newClient clientFunc) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a combined inventory report",
		Long: `Fetch computers, policies, and scripts and fold them into one JSON
report with per-endpoint counts. Endpoints that fail to fetch are left
out of the report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			styler := output.NewStyler(noColor)
			client, err := newClient()
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Couldn't connect to tenant: %v", err))
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			inv := interrogate.BuildInventory(ctx, client, logger, time.Now().UTC())

			jsonStr, err := output.FormatJSON(inv)
			if err != nil {
				return fmt.Errorf("failed to format report: %w", err)
			}

			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
				return nil
			}

			if err := os.WriteFile(outPath, []byte(jsonStr+"\n"), 0o644); err != nil {
				return fmt.Errorf("save report: %w", err)
			}
			styler.FprintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Report saved to %s", outPath))
			fmt.Fprintf(cmd.OutOrStdout(), "  computers: %d\n", inv.Summary["total_computers"])
			fmt.Fprintf(cmd.OutOrStdout(), "  policies:  %d\n", inv.Summary["total_policies"])
			fmt.Fprintf(cmd.OutOrStdout(), "  scripts:   %d\n", inv.Summary["total_scripts"])

			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write the report to a file instead of stdout")

	return cmd
}
