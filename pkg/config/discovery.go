package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/paths"
)

// FileName is the configuration file stowd searches for
const FileName = "stowd.cfg"

// EnvXDGConfigHome overrides ~/.config as the first discovery location
const EnvXDGConfigHome = "XDG_CONFIG_HOME"

// candidate yields zero or more paths to try. Candidates are evaluated in
// order and only until one of their paths names an existing file.
type candidate func() []string

// inDotfiles returns the two places a config can live inside a dotfiles
// directory: the stowd package's own XDG layout and a top-level dotfile.
func inDotfiles(dir string) []string {
	return []string{
		filepath.Join(dir, paths.AppDirName, ".config", paths.AppDirName, FileName),
		filepath.Join(dir, paths.AppDirName, "."+FileName),
	}
}

func candidates(home, dotfilesDir string) []candidate {
	return []candidate{
		func() []string {
			xdgHome, ok := os.LookupEnv(EnvXDGConfigHome)
			if !ok || xdgHome == "" {
				return nil
			}
			return []string{filepath.Join(paths.ExpandHome(xdgHome), paths.AppDirName, FileName)}
		},
		func() []string {
			return []string{filepath.Join(home, ".config", paths.AppDirName, FileName)}
		},
		func() []string {
			if dotfilesDir == "" {
				return nil
			}
			return inDotfiles(paths.ExpandHome(dotfilesDir))
		},
		func() []string {
			return inDotfiles(filepath.Join(home, paths.DefaultDotfilesDir))
		},
		func() []string {
			return inDotfiles(filepath.Join(home, paths.HiddenDotfilesDir))
		},
	}
}

// Discover returns the configuration file to load. An explicit path must
// exist. Otherwise the search order is $XDG_CONFIG_HOME, ~/.config, the
// supplied dotfiles directory, ~/dotfiles and ~/.dotfiles.
func Discover(explicitPath, dotfilesDir string) (string, error) {
	if explicitPath != "" {
		p := paths.ExpandHome(explicitPath)
		if !paths.IsFile(p) {
			return "", errors.Newf(errors.ErrInvalidPath, "config file %s does not exist", explicitPath).
				WithDetail("path", p)
		}
		return p, nil
	}

	home, err := paths.GetHomeDirectory()
	if err != nil {
		return "", err
	}

	var searched []string
	for _, next := range candidates(home, dotfilesDir) {
		for _, p := range next() {
			if paths.IsFile(p) {
				return p, nil
			}
			searched = append(searched, p)
		}
	}

	return "", errors.Newf(errors.ErrConfigNotFound,
		"%s not found, searched: %s", FileName, strings.Join(searched, ", ")).
		WithDetail("searched", searched)
}
