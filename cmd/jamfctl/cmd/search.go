package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamfctl/jamfctl/internal/cli/output"
	"github.com/jamfctl/jamfctl/internal/interrogate"
	"github.com/jamfctl/jamfctl/internal/jamf"
)

func newSearchCmd(newClient clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "search <endpoint> <query>",
		Short: "Search an endpoint by name",
		Long:  `Fetch every item of an endpoint and print those whose name contains the query (case-insensitive).`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, ok := jamf.ByName(args[0])
			if !ok {
				return jamf.ErrUnknownEndpoint(args[0])
			}
			query := args[1]

			styler := output.NewStyler(noColor)
			client, err := newClient()
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Couldn't connect to tenant: %v", err))
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			items, err := client.List(ctx, ep)
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Failed to fetch %s: %v", ep.Name, err))
				return err
			}

			matches := interrogate.FilterByName(items, query)

			if outputFormat == "json" {
				jsonStr, err := output.FormatJSON(matches)
				if err != nil {
					return fmt.Errorf("failed to format output: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Found %d matches:\n", len(matches))
			for _, item := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %s\n", item.ID, item.Name)
			}

			return nil
		},
	}
}
