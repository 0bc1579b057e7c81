package cmd

import (
	"github.com/spf13/cobra"

	"setup-mac/internal/checker"
)

// cloneCmd clones the configuration repository without installing any
// packages. The destination guard still applies: a non-empty
// destination aborts before git runs.
var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone the configuration repository into its destination",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := checker.New()
		if err := c.CheckOS(); err != nil {
			return err
		}
		if err := c.CheckGit(); err != nil {
			return err
		}

		engine, err := newEngine()
		if err != nil {
			return err
		}
		return engine.CloneConfig(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(cloneCmd)
}
