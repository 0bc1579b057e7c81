// Package checker verifies the host prerequisites before anything is
// installed: the OS must be macOS, and git and Homebrew must resolve on
// PATH. Each check is independent, prints a status line, and fails with
// an actionable diagnostic telling the user where to get the missing
// tool. Nothing is retried.
package checker

import (
	"fmt"
	"os/exec"
	"runtime"

	"setup-mac/internal/logger"
	"setup-mac/internal/model"
)

// Checker runs the environment checks. The OS identifier and the PATH
// lookup are fields so tests can simulate foreign platforms and missing
// binaries without touching the host.
type Checker struct {
	goos     string
	lookPath func(file string) (string, error)
}

// New returns a Checker bound to the real host environment.
func New() *Checker {
	return &Checker{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
	}
}

// CheckOS fails unless the tool is running on macOS.
func (c *Checker) CheckOS() error {
	if c.goos != "darwin" {
		return model.NewCLIError(model.ExitUnsupportedPlatform,
			fmt.Sprintf("unsupported platform %q: setup-mac only provisions macOS machines", c.goos))
	}
	logger.Info("[INFO] Running on macOS\n")
	return nil
}

// CheckGit resolves the git binary on PATH.
func (c *Checker) CheckGit() error {
	path, err := c.lookPath("git")
	if err != nil {
		return model.WrapCLIError(model.ExitMissingPrerequisite,
			"git not found on PATH; install the Xcode Command Line Tools (xcode-select --install) or download git from https://git-scm.com", err)
	}
	logger.Info("[INFO] Found git at %s\n", path)
	return nil
}

// CheckBrew resolves the Homebrew binary on PATH.
func (c *Checker) CheckBrew() error {
	path, err := c.lookPath("brew")
	if err != nil {
		return model.WrapCLIError(model.ExitMissingPrerequisite,
			"Homebrew not found on PATH; install it from https://brew.sh", err)
	}
	logger.Info("[INFO] Found Homebrew at %s\n", path)
	return nil
}
