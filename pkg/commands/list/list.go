// Package list finds the app directories available in the dotfiles
// directory, for shell completion.
package list

import (
	"os"
	"sort"
	"strings"

	"github.com/stowd/stowd/pkg/config"
	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/logging"
	"github.com/stowd/stowd/pkg/platform"
	"github.com/stowd/stowd/pkg/settings"
)

// ListAppsOptions defines the options for the ListApps command.
type ListAppsOptions struct {
	// DotfilesDir is the -d value. Empty means resolve it the way a run would.
	DotfilesDir string
	// ConfigPath is the -c value.
	ConfigPath string
	// Platform overrides the detected platform tag.
	Platform string
}

// ListApps returns the sorted names of the non-hidden directories in the
// dotfiles directory. A missing or broken config is not an error here; the
// defaults are used instead.
func ListApps(opts ListAppsOptions) ([]string, error) {
	log := logging.GetLogger("commands.list")

	var merged []config.Entry
	if cfg, err := config.Load(opts.ConfigPath, opts.DotfilesDir); err == nil {
		merged = cfg.Merged(config.SectionSettings, platform.Current(opts.Platform))
	} else {
		log.Debug().Err(err).Msg("No config for completion, using defaults")
	}

	s, err := settings.Resolve(settings.Flags{DotfilesDir: opts.DotfilesDir}, merged)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.DotfilesDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", s.DotfilesDir)
	}

	var apps []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		apps = append(apps, e.Name())
	}
	sort.Strings(apps)

	log.Debug().Int("count", len(apps)).Str("dotfiles", s.DotfilesDir).Msg("Apps listed")
	return apps, nil
}
