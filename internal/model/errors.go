// Package model defines the error and exit-code types shared by the CLI
// and the bootstrap pipeline.
//
// Every failure class the tool can hit maps to its own process exit code,
// so scripts and CI wrappers can tell WHY a run aborted without parsing
// log output. All failures are fatal for the run; there is no retry or
// downgrade path.
package model

import "fmt"

// ExitCode is the process exit status reported to the OS.
type ExitCode int

const (
	// ExitSuccess indicates the whole pipeline ran to completion.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unclassified error (bad config file,
	// unresolvable home directory, and similar).
	ExitGeneralError ExitCode = 1

	// ExitUnsupportedPlatform indicates the tool was started on an OS
	// other than macOS. Nothing is installed in that case.
	ExitUnsupportedPlatform ExitCode = 2

	// ExitMissingPrerequisite indicates git or Homebrew could not be
	// resolved on PATH. The diagnostic tells the user where to get it.
	ExitMissingPrerequisite ExitCode = 3

	// ExitInstallFailed indicates a Homebrew install (formula or cask)
	// returned non-zero. Remaining installs are not attempted.
	ExitInstallFailed ExitCode = 4

	// ExitDestConflict indicates the clone destination already exists and
	// is not empty. The destination is never touched in that case.
	ExitDestConflict ExitCode = 5

	// ExitCloneFailed indicates git clone failed (network, auth, or
	// remote-not-found — the tool does not distinguish).
	ExitCloneFailed ExitCode = 6
)

// CLIError carries an exit code alongside a human-readable message so the
// command layer can translate pipeline failures into process exit codes.
type CLIError struct {
	// Code is the exit code to report to the OS.
	Code ExitCode

	// Message is the human-readable description, including any
	// remediation hint.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError without an underlying cause.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError wrapping an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
