package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapcalc/internal/cli/output"
)

// MaxPrecision bounds the number of decimal places.
const MaxPrecision = 17

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, c.Precision)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if _, err := c.Lint.AnalyzerConfig(); err != nil {
		return err
	}
	return nil
}
