package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jamfctl/jamfctl/internal/cli/output"
	"github.com/jamfctl/jamfctl/internal/interrogate"
	"github.com/jamfctl/jamfctl/internal/jamf"
)

func newCompareCmd(newClient clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <endpoint> <id1> <id2>",
		Short: "Compare two items of an endpoint",
		Long:  `Fetch two items by id and print the top-level keys whose values differ, sorted by key.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, ok := jamf.ByName(args[0])
			if !ok {
				return jamf.ErrUnknownEndpoint(args[0])
			}
			id1, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[1])
			}
			id2, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[2])
			}

			styler := output.NewStyler(noColor)
			client, err := newClient()
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Couldn't connect to tenant: %v", err))
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			left, err := client.Get(ctx, ep, id1)
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Failed to fetch %s %d: %v", ep.Singular, id1, err))
				return err
			}
			right, err := client.Get(ctx, ep, id2)
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Failed to fetch %s %d: %v", ep.Singular, id2, err))
				return err
			}

			changes := interrogate.Diff(left, right)

			if outputFormat == "json" {
				jsonStr, err := output.FormatJSON(changes)
				if err != nil {
					return fmt.Errorf("failed to format output: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Found %d key differences:\n", len(changes))
			for _, c := range changes {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", c.Key)
				fmt.Fprintf(cmd.OutOrStdout(), "  [%d]: %v\n", id1, c.Left)
				fmt.Fprintf(cmd.OutOrStdout(), "  [%d]: %v\n", id2, c.Right)
			}

			return nil
		},
	}
}
