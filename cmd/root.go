// Package cmd defines the CLI surface of setup-mac. The root command
// runs the full bootstrap pipeline; the check, install, and clone
// subcommands run individual stages.
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"setup-mac/internal/brew"
	"setup-mac/internal/checker"
	"setup-mac/internal/config"
	"setup-mac/internal/git"
	"setup-mac/internal/installer"
	"setup-mac/internal/logger"
	"setup-mac/internal/model"
)

// Global flags, bound to persistent flags on the root command.
var (
	// debug enables debug logging via the `--debug` flag.
	debug bool

	// configPath is the optional manifest file passed via `--config`.
	// Empty means the compiled-in manifest.
	configPath string

	// dryRun skips every mutating command when set via `--dry-run`.
	dryRun bool
)

// rootCmd is the base command. Invoked with no arguments it runs the
// whole pipeline: checks, installs, destination guard, clone.
var rootCmd = &cobra.Command{
	Use:   "setup-mac",
	Short: "Bootstrap a macOS development environment",
	Long: `setup-mac provisions a macOS development machine: it verifies the host
prerequisites (macOS, git, Homebrew), installs a fixed list of command-line
tools and fonts via Homebrew, and clones an editor-configuration repository
into its well-known location.

Steps run strictly in order and the first failure aborts the run.`,

	// Errors are printed and mapped to exit codes in Execute.
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun runs before any subcommand; it initializes the
	// logger from the --debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		return engine.Run(cmd.Context())
	},
}

// newEngine loads the manifest and wires the pipeline engine with the
// real shell-backed clients.
func newEngine() (*installer.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "failed to load manifest", err)
	}
	return installer.New(cfg, checker.New(), brew.NewShellClient(), git.NewShellClient(), dryRun), nil
}

// Execute registers the global flags, runs the CLI, and translates
// pipeline failures into process exit codes. It is the entry point
// called from main.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a manifest file (default: compiled-in manifest)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")

	// An interrupt cancels the context, which kills the in-flight
	// external command.
	ctx, cancel := setupSignalHandler()
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("[ERROR] %v\n", err)

		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			os.Exit(int(cliErr.Code))
		}
		os.Exit(int(model.ExitGeneralError))
	}
}

// setupSignalHandler returns a context cancelled on SIGINT or SIGTERM.
func setupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	return ctx, cancel
}
