package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/leapcalc/internal/cli/config"
	"github.com/leapstack-labs/leapcalc/internal/cli/output"
	"github.com/leapstack-labs/leapcalc/pkg/calc"
	"github.com/leapstack-labs/leapcalc/pkg/lint"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive calculator shell",
		Long: `Start an interactive shell that evaluates one expression per line.

Dot commands:
  .help              Show help
  .rules             List validation rules
  .check <expr>      Show validation diagnostics for an expression
  .precision [n]     Show or set the number of decimal places
  .clear             Clear the screen
  .quit / .exit      Exit the shell

When standard input is not a terminal, lines are read without line editing.`,
		Example: `  # Start the shell
  leapcalc repl

  # Use a custom prompt and history file
  leapcalc repl --prompt "= " --history-file ~/.calc_history

  # Evaluate a script of expressions
  leapcalc repl < sums.txt`,
		RunE: runREPL,
	}

	cmd.Flags().String("prompt", config.DefaultPrompt, "Prompt shown before each line")
	cmd.Flags().String("history-file", config.DefaultHistory, "File used to persist line history")

	return cmd
}

// replSession evaluates REPL lines. It is independent of the terminal so it
// can be driven by readline or a plain scanner.
type replSession struct {
	id        string
	out       io.Writer
	errOut    io.Writer
	styles    *output.Styles
	logger    *slog.Logger
	opts      calc.Options
	lintCfg   *lint.Config
	evaluated int
}

func newREPLSession(cmdCtx *CommandContext, out, errOut io.Writer) (*replSession, error) {
	lintCfg, err := cmdCtx.Cfg.Lint.AnalyzerConfig()
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	return &replSession{
		id:      id,
		out:     out,
		errOut:  errOut,
		styles:  cmdCtx.Renderer.Styles(),
		logger:  cmdCtx.Logger.With("session", id),
		opts:    calc.Options{Precision: cmdCtx.Cfg.Precision, Jobs: 1},
		lintCfg: lintCfg,
	}, nil
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	prompt := cmdCtx.Cfg.REPL.Prompt
	if cmd.Flags().Changed("prompt") {
		prompt, _ = cmd.Flags().GetString("prompt")
	}
	historyFile := cmdCtx.Cfg.REPL.HistoryFile
	if cmd.Flags().Changed("history-file") {
		historyFile, _ = cmd.Flags().GetString("history-file")
	}

	session, err := newREPLSession(cmdCtx, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	session.logger.Debug("repl started", "precision", session.opts.Precision)

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		err = session.runInteractive(prompt, historyFile)
	} else {
		err = session.runScript(in)
	}

	session.logger.Debug("repl finished", "evaluated", session.evaluated)
	return err
}

// runInteractive drives the session with readline.
func (s *replSession) runInteractive(prompt, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		AutoComplete:    newDotCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(s.out, "leapcalc interactive shell")
	_, _ = fmt.Fprintln(s.out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(s.out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}
		if quit := s.handleLine(line); quit {
			return nil
		}
	}
}

// runScript reads lines from r until EOF or .quit.
func (s *replSession) runScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if quit := s.handleLine(scanner.Text()); quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// handleLine evaluates one line and reports whether the session should end.
func (s *replSession) handleLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return false
	}
	if strings.HasPrefix(trimmed, ".") && !isNumberStart(trimmed) {
		return s.handleDotCommand(trimmed)
	}

	res, err := calc.EvaluateWith(line, s.opts)
	s.evaluated++
	if err != nil {
		s.logger.Debug("evaluation failed", "expression", line, "error", err)
		_, _ = fmt.Fprintln(s.out, s.styles.Error.Render(calc.ErrorDisplay))
		_, _ = fmt.Fprintf(s.errOut, "  %v\n", err)
		return false
	}
	s.logger.Debug("evaluated", "expression", line, "display", res.Display)
	_, _ = fmt.Fprintln(s.out, s.styles.Value.Render(res.Display))
	return false
}

// isNumberStart reports whether line starts like ".5", which is an
// expression rather than a dot command.
func isNumberStart(line string) bool {
	return len(line) > 1 && line[1] >= '0' && line[1] <= '9'
}

func (s *replSession) handleDotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".rules":
		for _, rule := range allRules() {
			_, _ = fmt.Fprintf(s.out, "  %s  %-24s %s\n", rule.ID, rule.Name, rule.Description)
		}

	case ".check":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(s.errOut, "Usage: .check <expression>")
			return false
		}
		expr := strings.TrimSpace(strings.TrimPrefix(line, parts[0]))
		diags := calc.Diagnose(expr, s.lintCfg)
		if len(diags) == 0 {
			_, _ = fmt.Fprintln(s.out, s.styles.Success.Render("valid"))
			return false
		}
		for _, d := range diags {
			_, _ = fmt.Fprintln(s.out, d.String())
		}

	case ".precision":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(s.out, "precision: %d\n", s.opts.Precision)
			return false
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 0 || n > config.MaxPrecision {
			_, _ = fmt.Fprintf(s.errOut, "Invalid precision %q (expected 0-%d)\n", parts[1], config.MaxPrecision)
			return false
		}
		s.opts.Precision = n
		_, _ = fmt.Fprintf(s.out, "precision: %d\n", n)

	case ".clear":
		_, _ = fmt.Fprint(s.out, "\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help              Show this help message
  .rules             List validation rules
  .check <expr>      Show validation diagnostics
  .precision [n]     Show or set decimal places
  .clear             Clear the screen
  .quit / .exit      Exit the shell

Tips:
  - Operators: + - * / and parentheses; 50% means 50/100
  - Wrap a negative operand in parentheses: 3+(-2)
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

// newDotCompleter creates a readline completer for dot commands.
func newDotCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".rules"),
		readline.PcItem(".check"),
		readline.PcItem(".precision"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
