package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcalc/internal/cli/config"
	"github.com/leapstack-labs/leapcalc/internal/cli/output"
	"github.com/leapstack-labs/leapcalc/internal/cli/testutil"
)

func newFormatCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addFormatFlag(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestNewCommandContext(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd := newFormatCommand(t)
		cmd.SetContext(context.Background())

		cmdCtx, err := NewCommandContext(cmd)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultPrecision, cmdCtx.Cfg.Precision)
		assert.NotNil(t, cmdCtx.Logger)
		assert.Equal(t, output.ModeMarkdown, cmdCtx.Renderer.EffectiveMode())
	})

	t.Run("config from context", func(t *testing.T) {
		cfg := config.Default()
		cfg.OutputFormat = "json"
		cmd := newFormatCommand(t)
		cmd.SetContext(config.WithConfig(context.Background(), cfg))

		cmdCtx, err := NewCommandContext(cmd)
		require.NoError(t, err)
		assert.Same(t, cfg, cmdCtx.Cfg)
		assert.Equal(t, output.ModeJSON, cmdCtx.Renderer.EffectiveMode())
	})

	t.Run("format flag wins", func(t *testing.T) {
		cfg := config.Default()
		cfg.OutputFormat = "json"
		cmd := newFormatCommand(t, "--format", "yaml")
		cmd.SetContext(config.WithConfig(context.Background(), cfg))

		cmdCtx, err := NewCommandContext(cmd)
		require.NoError(t, err)
		assert.Equal(t, output.ModeYAML, cmdCtx.Renderer.EffectiveMode())
	})

	t.Run("invalid format", func(t *testing.T) {
		cmd := newFormatCommand(t, "-f", "csv")
		cmd.SetContext(context.Background())

		_, err := NewCommandContext(cmd)
		require.Error(t, err)
	})
}

func TestCollectExpressions(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}

	exprs, err := collectExpressions(cmd, []string{"1+1", "2"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1+1", "2"}, exprs)

	path := testutil.WriteExpressions(t, "# header", "  ", "3*3", " 4 ")
	exprs, err = collectExpressions(cmd, nil, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"3*3", " 4 "}, exprs)
}

func TestCollectExpressions_CRLF(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	path := filepath.Join(t.TempDir(), "windows.txt")
	require.NoError(t, os.WriteFile(path, []byte("# sums\r\n1+1\r\n\r\n2*3\r\n"), 0o600))

	exprs, err := collectExpressions(cmd, nil, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1+1", "2*3"}, exprs)

	out, _, err := testutil.ExecuteCommand(t, NewEvalCommand(), "", "-f", "text", "--file", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "Error")
	assert.Contains(t, out, "6")
}

func TestNewTUICommand(t *testing.T) {
	cmd := NewTUICommand()

	assert.Equal(t, "tui", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.RunE)
}
