package models

// StatsConfig contains configuration for a single statistics run
type StatsConfig struct {
	// Index selection
	Architecture string
	Mirror       string
	Suite        string
	Component    string
	Compression  string // gz, xz or zst

	// Verification
	KeyringPath string // Enables InRelease verification when set

	// Output
	LogLevel string // INFO, DEBUG or ERROR
	TopN     int
	Format   string // text, table or json
}
