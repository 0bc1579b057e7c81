// Package brew wraps the Homebrew command line. Installation is fully
// delegated to Homebrew: this package only builds argument lists, runs
// the binary, and reports results. Fonts and other non-CLI software go
// through the cask operations, which use a distinct install mode.
package brew

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"setup-mac/internal/logger"
)

// Client provides the Homebrew operations the bootstrap needs.
type Client interface {
	// Update refreshes the Homebrew package index.
	Update(ctx context.Context) error

	// IsInstalled reports whether a formula is already installed.
	IsInstalled(ctx context.Context, formula string) bool

	// Install installs a formula.
	Install(ctx context.Context, formula string) error

	// IsCaskInstalled reports whether a cask is already installed.
	IsCaskInstalled(ctx context.Context, cask string) bool

	// InstallCask installs a cask (fonts, GUI apps).
	InstallCask(ctx context.Context, cask string) error
}

// ShellClient implements Client by shelling out to the brew command.
type ShellClient struct {
	bin string
}

// NewShellClient creates a client that uses the brew binary on PATH.
func NewShellClient() *ShellClient {
	return &ShellClient{bin: "brew"}
}

// run executes a brew subcommand and returns its combined output. The
// exact command line is echoed at debug level.
func (c *ShellClient) run(ctx context.Context, args ...string) ([]byte, error) {
	logger.Debug("[DEBUG] Running: %s %s\n", c.bin, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, c.bin, args...)
	return cmd.CombinedOutput()
}

// Update runs `brew update` to refresh the package index.
func (c *ShellClient) Update(ctx context.Context) error {
	output, err := c.run(ctx, "update")
	if err != nil {
		return fmt.Errorf("brew update failed: %w: %s", err, output)
	}
	return nil
}

// IsInstalled queries `brew list --versions`; a zero exit status means
// the formula is installed.
func (c *ShellClient) IsInstalled(ctx context.Context, formula string) bool {
	_, err := c.run(ctx, "list", "--versions", formula)
	return err == nil
}

// Install runs `brew install` for a single formula.
func (c *ShellClient) Install(ctx context.Context, formula string) error {
	output, err := c.run(ctx, "install", formula)
	if err != nil {
		return fmt.Errorf("brew install %s failed: %w: %s", formula, err, output)
	}
	return nil
}

// IsCaskInstalled queries `brew list --cask --versions` for a cask.
func (c *ShellClient) IsCaskInstalled(ctx context.Context, cask string) bool {
	_, err := c.run(ctx, "list", "--cask", "--versions", cask)
	return err == nil
}

// InstallCask runs `brew install --cask` for a single cask.
func (c *ShellClient) InstallCask(ctx context.Context, cask string) error {
	output, err := c.run(ctx, "install", "--cask", cask)
	if err != nil {
		return fmt.Errorf("brew install --cask %s failed: %w: %s", cask, err, output)
	}
	return nil
}
