package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jamfctl/jamfctl/internal/cli/output"
	"github.com/jamfctl/jamfctl/internal/jamf"
)

func newDetailsCmd(newClient clientFunc) *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "details <endpoint> <id>",
		Short: "Get full details of one item",
		Long: `Fetch one item by id and print it as pretty JSON.

Endpoint names may be singular or plural (policy/policies). With --save
the JSON goes to a file instead of stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, ok := jamf.ByName(args[0])
			if !ok {
				return jamf.ErrUnknownEndpoint(args[0])
			}
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[1])
			}

			styler := output.NewStyler(noColor)
			client, err := newClient()
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Couldn't connect to tenant: %v", err))
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			detail, err := client.Get(ctx, ep, id)
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Failed to fetch details: %v", err))
				return err
			}

			jsonStr, err := output.FormatJSON(detail)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			if savePath != "" {
				if err := os.WriteFile(savePath, []byte(jsonStr+"\n"), 0o644); err != nil {
					return fmt.Errorf("save details: %w", err)
				}
				styler.FprintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Saved to %s", savePath))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
			return nil
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "Save the JSON to a file")

	return cmd
}
