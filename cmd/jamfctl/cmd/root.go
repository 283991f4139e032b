package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jamfctl/jamfctl/internal/cli/output"
	"github.com/jamfctl/jamfctl/internal/config"
	"github.com/jamfctl/jamfctl/internal/jamf"
)

// requestTimeout bounds each command's round trips to the tenant.
const requestTimeout = 30 * time.Second

var (
	version   string
	commit    string
	buildDate string

	// Global flags
	configPath   string
	logLevel     string
	outputFormat string
	noColor      bool

	// Replaced by PersistentPreRunE once --log-level is known; stays a
	// nop in command unit tests.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "jamfctl",
	Short: "Interrogate a Jamf Pro tenant",
	Long: `jamfctl is a practical CLI for poking around a Jamf Pro environment.

It lists, searches, compares, exports, and audits endpoint resources
(policies, computers, scripts, packages, groups) over the Classic API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q (available: debug, info, warn, error)", logLevel)
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		cfg.OutputPaths = []string{"stderr"}
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", getEnvOrDefault("JAMFCTL_CONFIG", config.DefaultPath()), "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Logging verbosity: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "Output format: table|json|csv")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// clientFunc defers client construction until flags are parsed.
type clientFunc func() (jamf.Client, error)

// tenantClient loads the config file and builds the live API client.
// An absent config file warns and proceeds with an empty configuration;
// the construction then fails with a message telling the user what to do.
func tenantClient() (jamf.Client, error) {
	cfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		output.NewStyler(noColor).FprintWarn(os.Stderr,
			fmt.Sprintf("no config found at %s - run 'jamfctl init' to create one", configPath))
		cfg = &config.Config{}
	case err != nil:
		return nil, err
	default:
		logger.Info("loaded config", zap.String("fqdn", cfg.FQDN))
	}
	return jamf.NewTenant(cfg, logger)
}

func Execute() error {
	rootCmd.AddCommand(newListCmd(tenantClient))
	rootCmd.AddCommand(newSearchCmd(tenantClient))
	rootCmd.AddCommand(newDetailsCmd(tenantClient))
	rootCmd.AddCommand(newCompareCmd(tenantClient))
	rootCmd.AddCommand(newAuditCmd(tenantClient))
	rootCmd.AddCommand(newExportCmd(tenantClient))
	rootCmd.AddCommand(newReportCmd(tenantClient))

	return rootCmd.Execute()
}

func SetVersion(v, c, d string) {
	version = v
	commit = c
	buildDate = d
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
