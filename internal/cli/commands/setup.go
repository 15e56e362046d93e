package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcalc/internal/cli/config"
	"github.com/leapstack-labs/leapcalc/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the context from the command's context values.
// A --format flag set on the command overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	format := cfg.OutputFormat
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		format = f.Value.String()
	}
	mode, err := output.ParseMode(format)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}, nil
}

// Helper functions shared across commands

// addFormatFlag registers the per-command --format flag.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Output format: text, markdown, json, yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "markdown", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// intFlagOr returns the flag value when it was set on the command line,
// otherwise fallback.
func intFlagOr(cmd *cobra.Command, name string, fallback int) int {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return fallback
	}
	return v
}

// collectExpressions returns args, or the lines of file when set. A file of
// "-" reads standard input. Blank lines and lines starting with '#' are
// skipped.
func collectExpressions(cmd *cobra.Command, args []string, file string) ([]string, error) {
	if file == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("no expressions given (pass them as arguments or use --file)")
		}
		return args, nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("cannot combine expression arguments with --file")
	}

	var r io.Reader
	if file == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(file) //nolint:gosec // user-supplied input file
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var exprs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expressions: %w", err)
	}
	return exprs, nil
}
