// Package config holds the bootstrap manifest: which Homebrew formulae and
// font casks to install and which configuration repository to clone where.
//
// The manifest ships as compiled-in defaults so the tool works with zero
// arguments. An optional YAML file (--config) overrides any part of it;
// fields left out of the file keep their defaults. All values are fixed for
// the duration of a run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default manifest. The package list is ordered; installs happen in list
// order. Duplicate names are tolerated (the second occurrence is a no-op
// because the first install satisfies the "already installed" check).
var (
	defaultPackages = []string{"neovim", "ripgrep", "fd", "fzf", "lazygit"}
	defaultFonts    = []string{"font-jetbrains-mono-nerd-font"}
)

// defaultRepoURL is the configuration repository cloned into the
// destination directory.
const defaultRepoURL = "https://github.com/nvim-lua/kickstart.nvim.git"

// Config is the top-level manifest structure.
type Config struct {
	// Packages are Homebrew formula names, installed in order.
	Packages []string `yaml:"packages"`

	// Fonts are Homebrew cask names. Casks use a distinct install mode
	// (brew install --cask) because fonts are not command-line tools.
	Fonts []string `yaml:"fonts"`

	// Repo describes the configuration repository to clone.
	Repo RepoConfig `yaml:"config_repo"`
}

// RepoConfig names the remote configuration repository and the local
// destination it is cloned into.
type RepoConfig struct {
	// URL is the remote repository, passed verbatim to git clone.
	URL string `yaml:"url"`

	// Dest is the local clone destination. Environment variables and a
	// leading ~/ are expanded. Must be absolute after expansion.
	Dest string `yaml:"dest"`
}

// Default returns the compiled-in manifest. The clone destination follows
// the XDG convention: $XDG_CONFIG_HOME/nvim when set, $HOME/.config/nvim
// otherwise.
func Default() (*Config, error) {
	cfg := &Config{
		Packages: append([]string(nil), defaultPackages...),
		Fonts:    append([]string(nil), defaultFonts...),
		Repo:     RepoConfig{URL: defaultRepoURL},
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the manifest at path. An empty path selects the
// compiled-in defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := cfg.expandEnv(); err != nil {
		return nil, err
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return &cfg, nil
}

// expandEnv expands environment variables and a leading ~/ in the string
// fields that name filesystem paths or remotes.
func (c *Config) expandEnv() error {
	c.Repo.URL = os.ExpandEnv(c.Repo.URL)

	dest := os.ExpandEnv(c.Repo.Dest)
	if dest == "~" || strings.HasPrefix(dest, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot resolve home directory: %w", err)
		}
		dest = filepath.Join(home, strings.TrimPrefix(dest, "~"))
	}
	c.Repo.Dest = dest
	return nil
}

// applyDefaults fills fields the manifest file left empty. A nil package
// or font list means "use the default list"; an explicitly empty list in
// the file stays empty.
func (c *Config) applyDefaults() error {
	if c.Packages == nil {
		c.Packages = append([]string(nil), defaultPackages...)
	}
	if c.Fonts == nil {
		c.Fonts = append([]string(nil), defaultFonts...)
	}
	if c.Repo.URL == "" {
		c.Repo.URL = defaultRepoURL
	}
	if c.Repo.Dest == "" {
		dest, err := defaultDest()
		if err != nil {
			return err
		}
		c.Repo.Dest = dest
	}
	return nil
}

// Validate checks the manifest for hard errors. Package list contents are
// not validated (Homebrew rejects unknown names itself) and duplicates are
// allowed.
func (c *Config) Validate() error {
	if c.Repo.URL == "" {
		return fmt.Errorf("config_repo.url is required")
	}
	if c.Repo.Dest == "" {
		return fmt.Errorf("config_repo.dest is required")
	}
	if !filepath.IsAbs(c.Repo.Dest) {
		return fmt.Errorf("config_repo.dest must be an absolute path: %s", c.Repo.Dest)
	}
	return nil
}

// DestParent returns the directory that must exist before the clone runs.
func (c *Config) DestParent() string {
	return filepath.Dir(c.Repo.Dest)
}

// defaultDest resolves ${XDG_CONFIG_HOME:-$HOME/.config}/nvim.
func defaultDest() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nvim"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "nvim"), nil
}
