package main

import (
	"setup-mac/cmd"
)

// main is the program entry point. It delegates to cmd.Execute(), which
// parses the command line and runs the bootstrap pipeline.
//
// setup-mac provisions a macOS development machine in one run:
//   - Verifies the host prerequisites: macOS, git on PATH, Homebrew on PATH
//   - Installs a fixed list of command-line tools via Homebrew, skipping
//     anything already installed, plus a Nerd Font via Homebrew cask
//   - Clones an editor-configuration repository into its well-known
//     location under the user's config directory
//
// Every step shells out to an external tool (brew, git) and the first
// failure aborts the whole run with a color-coded diagnostic and a
// class-specific exit code. There is no state file and no rollback:
// Homebrew itself tracks what is installed, and a pre-existing
// configuration directory is never touched.
func main() {
	cmd.Execute()
}
