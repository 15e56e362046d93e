// Package main provides tests for the leapcalc CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapcalc/internal/cli"
	"github.com/leapstack-labs/leapcalc/internal/cli/commands"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(commands.ProtectExpressionArgs(cmd, args))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, _, err := runCLI(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "leapcalc") {
		t.Errorf("version output should contain 'leapcalc', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, _, err := runCLI(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"eval", "check", "rules", "repl", "tui", "version", "completion"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestEvalCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	output, _, err := runCLI(t, "eval", "-o", "text", "2+3*4")
	if err != nil {
		t.Fatalf("eval command error = %v", err)
	}
	if output != "14\n" {
		t.Errorf("eval output = %q, want %q", output, "14\n")
	}
}

func TestEvalCommand_NegativeExpressions(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "negative literal", args: []string{"eval", "-o", "text", "-5"}, want: "-5\n"},
		{name: "negated group", args: []string{"eval", "-o", "text", "-(2+3)"}, want: "-5\n"},
		{name: "negative product", args: []string{"eval", "-o", "text", "-2*3"}, want: "-6\n"},
		{name: "after precision flag", args: []string{"eval", "-p", "2", "-o", "text", "-1/3"}, want: "-0.33\n"},
		{name: "explicit separator", args: []string{"eval", "-o", "text", "--", "-5"}, want: "-5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, _, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("eval command error = %v", err)
			}
			if output != tt.want {
				t.Errorf("output = %q, want %q", output, tt.want)
			}
		})
	}
}

func TestEvalCommand_Failure(t *testing.T) {
	t.Chdir(t.TempDir())

	output, errOut, err := runCLI(t, "eval", "-o", "text", "8/0")
	if err == nil {
		t.Fatal("expected error for division by zero")
	}
	if output != "Error\n" {
		t.Errorf("eval output = %q, want %q", output, "Error\n")
	}
	if !strings.Contains(errOut, "division by zero") {
		t.Errorf("stderr should explain the failure, got: %s", errOut)
	}
}

func TestEvalCommand_JSON(t *testing.T) {
	t.Chdir(t.TempDir())

	output, _, err := runCLI(t, "eval", "-o", "json", "10/4", "50%")
	if err != nil {
		t.Fatalf("eval command error = %v", err)
	}

	var result struct {
		Results []struct {
			Expression string `json:"expression"`
			Display    string `json:"display"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, output)
	}
	if len(result.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(result.Results))
	}
	if result.Results[0].Display != "2.5" || result.Results[1].Display != "0.5" {
		t.Errorf("unexpected displays: %+v", result.Results)
	}
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cfg := "precision: 2\noutput: text\n"
	if err := os.WriteFile(filepath.Join(dir, "leapcalc.yaml"), []byte(cfg), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{name: "config file", args: []string{"eval", "1/3"}, want: "0.33\n"},
		{name: "env over file", env: "4", args: []string{"eval", "1/3"}, want: "0.3333\n"},
		{name: "flag over env", env: "4", args: []string{"eval", "-p", "1", "1/3"}, want: "0.3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("LEAPCALC_PRECISION", tt.env)
			}
			output, _, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("eval command error = %v", err)
			}
			if output != tt.want {
				t.Errorf("output = %q, want %q", output, tt.want)
			}
		})
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, "leapcalc.yaml"), []byte("jobs: 0\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, _, err := runCLI(t, "eval", "1+1")
	if err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestCompletionCommand(t *testing.T) {
	output, _, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion command error = %v", err)
	}
	if !strings.Contains(output, "leapcalc") {
		t.Errorf("completion script should mention leapcalc")
	}
}
