// Package config provides configuration management for the leapcalc CLI.
//
// Configuration is layered with koanf: defaults, then leapcalc.yaml, then
// LEAPCALC_* environment variables, then command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leapcalc/pkg/core"
	"github.com/leapstack-labs/leapcalc/pkg/format"
	"github.com/leapstack-labs/leapcalc/pkg/lint"
)

// Default configuration values.
const (
	DefaultPrecision = format.ExpressionPrecision
	DefaultJobs      = 4
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel  = "info"
	DefaultPrompt    = "calc> "
	DefaultHistory   = ".leapcalc_history"
	ConfigFileName   = "leapcalc.yaml"
	EnvPrefix        = "LEAPCALC_"
)

// Config holds all CLI configuration options.
type Config struct {
	Precision    int        `koanf:"precision"`
	Jobs         int        `koanf:"jobs"`
	OutputFormat string     `koanf:"output"`
	Verbose      bool       `koanf:"verbose"`
	LogLevel     string     `koanf:"log_level"`
	REPL         REPLConfig `koanf:"repl"`
	Lint         LintConfig `koanf:"lint"`
}

// REPLConfig holds settings for the interactive shell.
type REPLConfig struct {
	Prompt      string `koanf:"prompt"`
	HistoryFile string `koanf:"history_file"`
}

// LintConfig selects which validation rules run and how severe they are.
type LintConfig struct {
	Disabled []string          `koanf:"disabled"`
	Severity map[string]string `koanf:"severity"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Precision:    DefaultPrecision,
		Jobs:         DefaultJobs,
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		REPL: REPLConfig{
			Prompt:      DefaultPrompt,
			HistoryFile: DefaultHistory,
		},
	}
}

// AnalyzerConfig converts the lint section into a lint.Config.
func (c LintConfig) AnalyzerConfig() (*lint.Config, error) {
	cfg := lint.NewConfig()
	// Environment values arrive as a single comma-separated entry.
	for _, entry := range c.Disabled {
		for _, id := range strings.Split(entry, ",") {
			id = strings.ToUpper(strings.TrimSpace(id))
			if id == "" {
				continue
			}
			cfg.Disable(id)
		}
	}
	for id, s := range c.Severity {
		sev, ok := core.ParseSeverity(s)
		if !ok {
			return nil, fmt.Errorf("invalid severity %q for rule %s", s, id)
		}
		cfg.SetSeverity(strings.ToUpper(id), sev)
	}
	return cfg, nil
}
