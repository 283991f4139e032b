package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamfctl/jamfctl/internal/cli/output"
	"github.com/jamfctl/jamfctl/internal/interrogate"
)

func newExportCmd(newClient clientFunc) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every endpoint to JSON files",
		Long:  `Fetch every endpoint and write one pretty-printed JSON file per collection into a directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			styler := output.NewStyler(noColor)
			client, err := newClient()
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Couldn't connect to tenant: %v", err))
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			written, err := interrogate.ExportAll(ctx, client, dir)
			for _, path := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "  saved %s\n", path)
			}
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Export failed: %v", err))
				return err
			}

			styler.FprintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Exported %d endpoints to %s", len(written), dir))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "jamf_export", "Directory to write the export files into")

	return cmd
}
