package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamfctl/jamfctl/internal/cli/output"
	"github.com/jamfctl/jamfctl/internal/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a sample config file",
		Long:  `Write a sample config with placeholder credentials to the --config path, overwriting any existing file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteSample(configPath); err != nil {
				return fmt.Errorf("write sample config: %w", err)
			}
			styler := output.NewStyler(noColor)
			styler.FprintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Created sample config at %s", configPath))
			fmt.Fprintln(cmd.OutOrStdout(), "Edit this file with your Jamf credentials")
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newInitCmd())
}
