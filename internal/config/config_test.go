package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeManifest writes a YAML manifest into a temp dir and returns its path.
func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "setup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/home/dev/.config")

	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"neovim", "ripgrep", "fd", "fzf", "lazygit"}, cfg.Packages)
	assert.Equal(t, []string{"font-jetbrains-mono-nerd-font"}, cfg.Fonts)
	assert.Equal(t, "https://github.com/nvim-lua/kickstart.nvim.git", cfg.Repo.URL)
	assert.Equal(t, "/home/dev/.config/nvim", cfg.Repo.Dest)
}

func TestDefault_NoXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/dev")

	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "/home/dev/.config/nvim", cfg.Repo.Dest)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/home/dev/.config")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"neovim", "ripgrep", "fd", "fzf", "lazygit"}, cfg.Packages)
}

func TestLoad_FullManifest(t *testing.T) {
	path := writeManifest(t, `
packages:
  - tmux
  - jq
fonts:
  - font-hack-nerd-font
config_repo:
  url: https://example.com/dotfiles.git
  dest: /home/dev/.config/custom
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"tmux", "jq"}, cfg.Packages)
	assert.Equal(t, []string{"font-hack-nerd-font"}, cfg.Fonts)
	assert.Equal(t, "https://example.com/dotfiles.git", cfg.Repo.URL)
	assert.Equal(t, "/home/dev/.config/custom", cfg.Repo.Dest)
}

func TestLoad_PartialManifestKeepsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/home/dev/.config")
	path := writeManifest(t, `
packages:
  - tmux
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"tmux"}, cfg.Packages)
	assert.Equal(t, []string{"font-jetbrains-mono-nerd-font"}, cfg.Fonts)
	assert.Equal(t, "https://github.com/nvim-lua/kickstart.nvim.git", cfg.Repo.URL)
	assert.Equal(t, "/home/dev/.config/nvim", cfg.Repo.Dest)
}

func TestLoad_ExplicitEmptyListStaysEmpty(t *testing.T) {
	path := writeManifest(t, `
packages: []
fonts: []
config_repo:
  dest: /home/dev/.config/nvim
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Packages)
	assert.Empty(t, cfg.Fonts)
}

func TestLoad_ExpandsEnvAndTilde(t *testing.T) {
	t.Setenv("HOME", "/home/dev")
	t.Setenv("MY_DEST", "/home/dev/.config/from-env")

	t.Run("env variable", func(t *testing.T) {
		path := writeManifest(t, `
config_repo:
  dest: $MY_DEST
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/home/dev/.config/from-env", cfg.Repo.Dest)
	})

	t.Run("leading tilde", func(t *testing.T) {
		path := writeManifest(t, `
config_repo:
  dest: ~/.config/nvim
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/home/dev/.config/nvim", cfg.Repo.Dest)
	})
}

func TestLoad_RelativeDestRejected(t *testing.T) {
	path := writeManifest(t, `
config_repo:
  dest: relative/nvim
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absolute")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeManifest(t, "packages: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestDestParent(t *testing.T) {
	cfg := &Config{Repo: RepoConfig{Dest: "/home/dev/.config/nvim"}}
	assert.Equal(t, "/home/dev/.config", cfg.DestParent())
}
