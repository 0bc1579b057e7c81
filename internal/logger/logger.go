// Package logger provides the colored console output used by every
// component of setup-mac. Levels are plain Printf-style functions backed
// by fatih/color, so call sites read like fmt.Printf with a level prefix.
package logger

import (
	"github.com/fatih/color"
)

// Info logs informational messages in green. Used for successful steps
// and normal progress output.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta. Used for non-fatal
// notices, e.g. a package that is already installed and will be skipped.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red. Every fatal diagnostic goes through
// this before the process exits non-zero.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan when enabled via Init, otherwise it
// is a no-op. It defaults to the no-op so packages may log before the CLI
// has parsed its flags.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging. It is called once from the CLI
// root command after flag parsing; enableDebug mirrors the --debug flag.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
