package config

import (
	"fmt"
	"slices"
)

var (
	validLocales   = []string{"en", "my"}
	validBackends  = []string{"simulated", "sqlite"}
	validExporters = []string{"none", "file", "stdout", "otlp"}
	validModes     = []string{"", "light", "dark"}
)

// Validate checks the whole configuration and returns the first problem found.
func Validate(cfg Config) error {
	if cfg.Locale != "" && !slices.Contains(validLocales, cfg.Locale) {
		return fmt.Errorf("locale must be \"en\" or \"my\", got %q", cfg.Locale)
	}
	if err := ValidateAccount(cfg.Account); err != nil {
		return err
	}
	if !slices.Contains(validModes, cfg.Theme.Mode) {
		return fmt.Errorf("theme.mode must be \"light\" or \"dark\", got %q", cfg.Theme.Mode)
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateAccount checks account backend configuration.
func ValidateAccount(acc AccountConfig) error {
	if acc.Backend != "" && !slices.Contains(validBackends, acc.Backend) {
		return fmt.Errorf("account.backend must be \"simulated\" or \"sqlite\", got %q", acc.Backend)
	}
	if acc.Delay < 0 {
		return fmt.Errorf("account.delay must not be negative, got %s", acc.Delay)
	}
	if acc.DuplicateWindow < 0 {
		return fmt.Errorf("account.duplicate_window must not be negative, got %s", acc.DuplicateWindow)
	}
	if acc.FailEvery < 0 {
		return fmt.Errorf("account.fail_every must not be negative, got %d", acc.FailEvery)
	}
	if acc.Backend == "sqlite" && acc.DBPath == "" {
		return fmt.Errorf("account.db_path is required when backend is \"sqlite\"")
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" && !slices.Contains(validExporters, tracing.Exporter) {
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}
