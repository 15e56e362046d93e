package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ExpressionArgsAnnotation marks commands whose positional arguments are
// expressions. ProtectExpressionArgs only rewrites arguments for them.
const ExpressionArgsAnnotation = "leapcalc/expression-args"

// ProtectExpressionArgs inserts "--" before the first argument that reads as
// a negative expression ("-5", "--5", "-(2+3)", "-.5") so that flag parsing
// does not claim it. Flag values are skipped using the target command's flag
// set. Arguments are returned unchanged when the target command does not
// take expressions or flag parsing is already terminated.
func ProtectExpressionArgs(root *cobra.Command, args []string) []string {
	target, _, err := root.Find(args)
	if err != nil || target.Annotations[ExpressionArgsAnnotation] != "true" {
		return args
	}

	start := 0
	if target != root {
		start = -1
		for i, arg := range args {
			if arg == target.Name() || target.HasAlias(arg) {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return args
		}
	}

	for i := start; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case isNegativeExpression(arg):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if f := lookupFlag(target, arg); f != nil && f.NoOptDefVal == "" && !strings.Contains(arg, "=") {
				i++ // value
			}
		default:
			// First positional argument; the rest are positional too.
			return args
		}
	}
	return args
}

// isNegativeExpression reports whether arg is a sign run followed by the
// start of an operand.
func isNegativeExpression(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	rest := strings.TrimLeft(arg, "+-")
	if rest == "" {
		return false
	}
	c := rest[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '('
}

// lookupFlag finds the flag named by arg ("--name", "--name=v" or "-n") on
// cmd, including flags inherited from its parents.
func lookupFlag(cmd *cobra.Command, arg string) *pflag.Flag {
	lookup := func(fs *pflag.FlagSet) *pflag.Flag {
		if name, ok := strings.CutPrefix(arg, "--"); ok {
			name, _, _ = strings.Cut(name, "=")
			return fs.Lookup(name)
		}
		if len(arg) == 2 {
			return fs.ShorthandLookup(arg[1:])
		}
		return nil
	}
	if f := lookup(cmd.Flags()); f != nil {
		return f
	}
	return lookup(cmd.InheritedFlags())
}
