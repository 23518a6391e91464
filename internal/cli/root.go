package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ralt/debstats/internal/fetcher"
	"github.com/ralt/debstats/internal/models"
	"github.com/ralt/debstats/internal/report"
)

// NewRootCmd creates the root command. log receives all diagnostics; the
// report itself goes to the command's output. client may be nil.
func NewRootCmd(log *logrus.Logger, client fetcher.Doer) *cobra.Command {
	var config models.StatsConfig

	rootCmd := &cobra.Command{
		Use:   "debstats <architecture>",
		Short: "Show the Debian packages that ship the most files",
		Long: `Debstats downloads the Contents index of a Debian mirror for one
architecture, counts how many files each package ships and prints the
packages with the most files.

Supported architectures:
  ` + strings.Join(models.SupportedArchitectures, ", "),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Architecture = args[0]
			return run(cmd, log, client, &config)
		},
	}

	// Output flags
	rootCmd.Flags().StringVar(&config.LogLevel, "log-level", "INFO", "Set the logging level (INFO, DEBUG, ERROR)")
	rootCmd.Flags().IntVarP(&config.TopN, "top", "n", report.DefaultTopN, "Number of packages to display")
	rootCmd.Flags().StringVar(&config.Format, "format", string(report.FormatText), "Output format (text, table, json)")

	// Mirror flags
	rootCmd.Flags().StringVar(&config.Mirror, "mirror", fetcher.DefaultMirror, "Base URL of the Debian mirror")
	rootCmd.Flags().StringVar(&config.Suite, "suite", fetcher.DefaultSuite, "Release suite or codename")
	rootCmd.Flags().StringVar(&config.Component, "component", fetcher.DefaultComponent, "Archive component")
	rootCmd.Flags().StringVar(&config.Compression, "compression", "gz", "Compression of the Contents index (gz, xz, zst)")

	// Verification flags
	rootCmd.Flags().StringVar(&config.KeyringPath, "keyring", "", "OpenPGP keyring used to verify InRelease and the index checksum")

	return rootCmd
}

// parseLogLevel maps the --log-level values onto logrus levels
func parseLogLevel(s string) (logrus.Level, error) {
	switch strings.ToUpper(s) {
	case "INFO":
		return logrus.InfoLevel, nil
	case "DEBUG":
		return logrus.DebugLevel, nil
	case "ERROR":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, &models.StatsError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("invalid log level %q (choose from INFO, DEBUG, ERROR)", s),
		}
	}
}

// validateConfig checks config and returns the parsed output format
func validateConfig(config *models.StatsConfig) (report.Format, error) {
	if err := models.ValidateArchitecture(config.Architecture); err != nil {
		return "", err
	}

	if config.TopN < 1 {
		return "", &models.StatsError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("top must be at least 1, got %d", config.TopN),
		}
	}

	format, err := report.ParseFormat(config.Format)
	if err != nil {
		return "", &models.StatsError{Type: models.ErrInvalidConfig, Err: err}
	}

	if config.Mirror == "" {
		return "", &models.StatsError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("mirror is required"),
		}
	}

	return format, nil
}
