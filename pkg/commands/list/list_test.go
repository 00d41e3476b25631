package list

import (
	"path/filepath"
	"testing"

	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAppsDefaultDotfiles(t *testing.T) {
	home := testutil.SetupHome(t)
	dotfiles := testutil.CreateDotfiles(t, home, "vim", "tmux", "git")
	testutil.CreateDir(t, dotfiles, ".git")
	testutil.CreateFile(t, dotfiles, "README.md", "")

	apps, err := ListApps(ListAppsOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "tmux", "vim"}, apps)
}

func TestListAppsFromConfig(t *testing.T) {
	home := testutil.SetupHome(t)
	testutil.CreateDir(t, home, "dotfiles")
	custom := testutil.CreateDir(t, home, "dots")
	testutil.CreateDir(t, custom, "zsh")
	testutil.CreateFile(t, home, ".config/stowd/stowd.cfg", "[settings]\ndotfiles_dir = ~/dots\n")

	apps, err := ListApps(ListAppsOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"zsh"}, apps)
}

func TestListAppsExplicitDir(t *testing.T) {
	home := testutil.SetupHome(t)
	dir := testutil.CreateDir(t, home, "elsewhere")
	testutil.CreateDir(t, dir, "emacs")

	apps, err := ListApps(ListAppsOptions{DotfilesDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"emacs"}, apps)
}

func TestListAppsMissingDir(t *testing.T) {
	home := testutil.SetupHome(t)

	_, err := ListApps(ListAppsOptions{DotfilesDir: filepath.Join(home, "nope")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPath))
}
