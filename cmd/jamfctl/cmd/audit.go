package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamfctl/jamfctl/internal/cli/output"
	"github.com/jamfctl/jamfctl/internal/interrogate"
)

func newAuditCmd(newClient clientFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Run audit checks",
		Long:  `Run read-only audit checks against the tenant.`,
	}

	cmd.AddCommand(newAuditEmptyGroupsCmd(newClient))

	return cmd
}

func newAuditEmptyGroupsCmd(newClient clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "empty-groups",
		Short: "Report computer groups with no members",
		RunE: func(cmd *cobra.Command, args []string) error {
			styler := output.NewStyler(noColor)
			client, err := newClient()
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Couldn't connect to tenant: %v", err))
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			audit, err := interrogate.EmptyGroups(ctx, client, logger)
			if err != nil {
				styler.FprintError(cmd.OutOrStderr(), fmt.Sprintf("Failed to fetch groups: %v", err))
				return err
			}

			if outputFormat == "json" {
				jsonStr, err := output.FormatJSON(audit)
				if err != nil {
					return fmt.Errorf("failed to format output: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Checked %d groups, found %d empty:\n", audit.Checked, len(audit.Empty))
			for _, group := range audit.Empty {
				fmt.Fprintf(cmd.OutOrStdout(), "  [%d] %s\n", group.ID, group.Name)
			}
			if audit.Skipped > 0 {
				styler.FprintWarn(cmd.OutOrStdout(), fmt.Sprintf("%d groups skipped (detail fetch failed)", audit.Skipped))
			}

			return nil
		},
	}
}
