package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jamfctl/jamfctl/internal/cli/output"
	"github.com/jamfctl/jamfctl/internal/jamf"
)

func newListCmd(newClient clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list <endpoint>",
		Short: "List all items of an endpoint",
		Long: `Fetch every item of an endpoint and print it.

The global --output flag picks the rendering: a table (default), a JSON
array, or CSV limited to the endpoint's field subset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, ok := jamf.ByName(args[0])
			if !ok {
				return jamf.ErrUnknownEndpoint(args[0])
			}

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

			switch outputFormat {
			case "json":
				jsonStr, err := output.FormatJSON(items)
				if err != nil {
					return fmt.Errorf("failed to format output: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
			case "csv":
				if err := output.WriteCSV(cmd.OutOrStdout(), ep.Fields, csvRows(items, ep.Fields)); err != nil {
					return fmt.Errorf("failed to write csv: %w", err)
				}
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Found %d %s:\n", len(items), ep.Name)
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, tableHeader(ep.Fields))
				for _, item := range items {
					row := make([]string, len(ep.Fields))
					for i, f := range ep.Fields {
						row[i] = item.Field(f)
					}
					fmt.Fprintln(w, strings.Join(row, "\t"))
				}
				w.Flush()
			}

			return nil
		},
	}
}

// csvRows projects items onto the field subset, one cell per field.
func csvRows(items []jamf.Summary, fields []string) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = item.Field(f)
		}
		rows = append(rows, row)
	}
	return rows
}

func tableHeader(fields []string) string {
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = strings.ToUpper(strings.ReplaceAll(f, "_", " "))
	}
	return strings.Join(cols, "\t")
}
