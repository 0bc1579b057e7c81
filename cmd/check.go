package cmd

import (
	"github.com/spf13/cobra"

	"setup-mac/internal/checker"
)

// checkCmd runs only the environment checks: host OS, git, Homebrew.
// Useful to verify a machine before letting the full pipeline touch it.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the host prerequisites without installing anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := checker.New()
		if err := c.CheckOS(); err != nil {
			return err
		}
		if err := c.CheckGit(); err != nil {
			return err
		}
		return c.CheckBrew()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
