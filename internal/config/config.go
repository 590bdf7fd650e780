// Package config defines process configuration and how it is loaded.
//
// Conventions:
// - Defaults live in New; Load layers a YAML file and env vars on top.
// - External errors are wrapped with this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile, when set, tees logs into a rotated file.
	LogFile string `koanf:"log_file"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DataPath points at the dataset (.csv, .xlsx or .xls).
	DataPath string `koanf:"data_path"`

	// Charset names the CSV text encoding, e.g. "utf-8" or "windows-1251".
	Charset string `koanf:"charset"`

	// Sheet selects a workbook sheet; empty means the first one.
	Sheet string `koanf:"sheet"`

	// Language is the BCP 47 tag used to format numbers in reports.
	Language string `koanf:"language"`

	// DefaultCountry is the country the report shows in detail.
	DefaultCountry string `koanf:"default_country"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		DataPath:       "AllTimeRankingByCountry.csv",
		Charset:        "utf-8",
		Language:       "en",
		DefaultCountry: "Spain",
	}
}
