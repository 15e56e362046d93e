// Package core defines the shared language of the leapcalc system.
//
// This package contains the value types that travel between the
// validator, the command line and the output renderers: diagnostic
// severities and rule metadata.
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
