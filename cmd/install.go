package cmd

import (
	"github.com/spf13/cobra"

	"setup-mac/internal/checker"
)

// installCmd installs the manifest's packages and fonts without cloning
// the configuration repository. Only the checks the stage depends on
// run first: the host OS and Homebrew.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the manifest's Homebrew packages and fonts",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := checker.New()
		if err := c.CheckOS(); err != nil {
			return err
		}
		if err := c.CheckBrew(); err != nil {
			return err
		}

		engine, err := newEngine()
		if err != nil {
			return err
		}
		return engine.InstallPackages(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
