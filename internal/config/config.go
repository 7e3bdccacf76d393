package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Report   ReportConfig   `mapstructure:"report"`
	Accounts AccountsConfig `mapstructure:"accounts"`
	Disk     DiskConfig     `mapstructure:"disk"`
}

// LoggingConfig holds logging-related settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReportConfig holds the disk usage report defaults. Exclude is the
// set of pseudo-filesystem paths skipped on every scan, regardless of
// the report target.
type ReportConfig struct {
	Unit    string   `mapstructure:"unit"`
	Format  string   `mapstructure:"format"`
	Sort    string   `mapstructure:"sort"`
	Exclude []string `mapstructure:"exclude"`
}

// AccountsConfig holds account management settings.
type AccountsConfig struct {
	ArchiveDir string `mapstructure:"archive_dir"`
}

// DiskConfig holds disk threshold check settings.
type DiskConfig struct {
	ThresholdPercent float64 `mapstructure:"threshold_percent"`
}

// Load reads configuration from the specified file path.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("report.unit", "M")
	v.SetDefault("report.format", "text")
	v.SetDefault("report.sort", "name")
	v.SetDefault("report.exclude", []string{"/proc", "/dev", "/sys", "/run"})
	v.SetDefault("accounts.archive_dir", "/var/backups/hostadm")
	v.SetDefault("disk.threshold_percent", 80)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("hostadm")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/hostadm")
		v.AddConfigPath("$HOME/.config/hostadm")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK if using defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Accounts.ArchiveDir == "" {
		return fmt.Errorf("accounts.archive_dir is required")
	}

	if c.Disk.ThresholdPercent <= 0 || c.Disk.ThresholdPercent > 100 {
		return fmt.Errorf("disk.threshold_percent must be in (0, 100]")
	}

	switch c.Report.Unit {
	case "K", "M", "G":
	default:
		return fmt.Errorf("report.unit must be one of K, M, G")
	}

	return nil
}

// Default returns a default configuration suitable for testing or initial setup.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Report: ReportConfig{
			Unit:    "M",
			Format:  "text",
			Sort:    "name",
			Exclude: []string{"/proc", "/dev", "/sys", "/run"},
		},
		Accounts: AccountsConfig{
			ArchiveDir: "/var/backups/hostadm",
		},
		Disk: DiskConfig{
			ThresholdPercent: 80,
		},
	}
}
