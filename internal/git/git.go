// Package git wraps the git command line for cloning the configuration
// repository.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"setup-mac/internal/logger"
)

// Client provides the git operations the bootstrap needs.
type Client interface {
	// Clone performs a full clone of url into dest.
	Clone(ctx context.Context, url, dest string) error
}

// ShellClient implements Client by shelling out to the git command.
type ShellClient struct{}

// NewShellClient creates a client that uses the git binary on PATH.
func NewShellClient() *ShellClient {
	return &ShellClient{}
}

// Clone creates the parent directory of dest if missing, then runs
// `git clone url dest`. Any clone failure (network, auth, remote not
// found) propagates with the captured git output; there is no retry.
func (c *ShellClient) Clone(ctx context.Context, url, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	logger.Debug("[DEBUG] Running: git clone %s %s\n", url, dest)
	cmd := exec.CommandContext(ctx, "git", "clone", url, dest)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git clone failed: %w: %s", err, output)
	}
	return nil
}
