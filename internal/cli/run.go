package cli

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ralt/debstats/internal/contents"
	"github.com/ralt/debstats/internal/fetcher"
	"github.com/ralt/debstats/internal/models"
	"github.com/ralt/debstats/internal/report"
	"github.com/ralt/debstats/internal/signer"
)

// run executes the pipeline: validate, fetch, count, report. The first
// failure aborts it and nothing is printed.
func run(cmd *cobra.Command, log *logrus.Logger, client fetcher.Doer, config *models.StatsConfig) error {
	start := time.Now()

	level, err := parseLogLevel(config.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	log.Info("Starting the Debian package statistics tool.")

	// Step 1: Validate arguments
	phase := time.Now()
	log.Info("Parsing command-line arguments.")
	format, err := validateConfig(config)
	log.Infof("Argument parsing completed in %.3f seconds.", time.Since(phase).Seconds())
	if err != nil {
		return err
	}
	log.Infof("Command-line argument received: architecture=%s", config.Architecture)
	log.Debugf("Configuration: %+v", *config)

	// Step 2: Download and decompress
	var verifier signer.Verifier
	if config.KeyringPath != "" {
		v, err := signer.NewGPGVerifier(config.KeyringPath)
		if err != nil {
			return &models.StatsError{Type: models.ErrInvalidConfig, Err: err}
		}
		verifier = v
		log.Infof("Loaded keyring %s", config.KeyringPath)
	}

	f, err := fetcher.NewFetcher(config, client, verifier, log)
	if err != nil {
		return err
	}

	content, err := f.Fetch(cmd.Context(), config.Architecture)
	if err != nil {
		return err
	}

	// Step 3: Count files per package
	phase = time.Now()
	log.Info("Counting files per package.")
	counts := contents.NewCounter(log).Count(content)
	log.Info("File counts per package computed successfully.")
	log.Infof("Counting files per package completed in %.3f seconds.", time.Since(phase).Seconds())

	// Step 4: Display
	phase = time.Now()
	log.Infof("Displaying the top %d packages by file count.", config.TopN)
	rep := report.New(config.Architecture, counts, config.TopN)
	if err := rep.Render(cmd.OutOrStdout(), format); err != nil {
		return err
	}
	for _, e := range rep.Packages {
		log.Debugf("%s: %d files", e.Package, e.Files)
	}
	log.Infof("Displayed the top %d packages by file count in %.3f seconds.", config.TopN, time.Since(phase).Seconds())

	log.Infof("Processed %d packages in total.", len(counts))
	log.Infof("Total process completed in %.3f seconds.", time.Since(start).Seconds())

	return nil
}
