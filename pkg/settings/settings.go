// Package settings resolves the effective run settings from built-in
// defaults, the merged settings section of stowd.cfg and explicit CLI flags.
package settings

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/stowd/stowd/pkg/boolean"
	"github.com/stowd/stowd/pkg/config"
	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/logging"
	"github.com/stowd/stowd/pkg/paths"
)

// Recognized keys of the settings section
const (
	KeyDotfilesDir = "dotfiles_dir"
	KeyVerbose     = "verbose"
	KeyQuiet       = "quiet"
	KeySimulate    = "simulate"
	KeyRoot        = "root"
)

// Settings holds the effective settings of one run. It is resolved once
// before any target is processed and never modified afterwards.
type Settings struct {
	DotfilesDir string
	Verbose     bool
	Quiet       bool
	Simulate    bool
	Root        bool
}

// Flags carries the values given explicitly on the command line. A nil
// pointer or an empty DotfilesDir means the flag was not given.
type Flags struct {
	DotfilesDir string
	Verbose     *bool
	Quiet       *bool
	Simulate    *bool
	Root        *bool
}

// Bool returns a pointer to b, for filling Flags
func Bool(b bool) *bool {
	return &b
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyDotfilesDir: "",
		KeyVerbose:     false,
		KeyQuiet:       false,
		KeySimulate:    false,
		KeyRoot:        false,
	}
}

// fromConfig converts the merged settings section into a koanf layer.
// Boolean settings must carry a boolean token.
func fromConfig(merged []config.Entry) (map[string]interface{}, error) {
	log := logging.GetLogger("settings")

	layer := make(map[string]interface{})
	for _, e := range merged {
		switch e.Key {
		case KeyDotfilesDir:
			layer[e.Key] = e.Value
		case KeyVerbose, KeyQuiet, KeySimulate, KeyRoot:
			if !boolean.IsBool(e.Value) {
				return nil, errors.Newf(errors.ErrConfigInvalid,
					"setting %s has non-boolean value %q, expected one of %s",
					e.Key, e.Value, strings.Join(boolean.Tokens(), ", ")).
					WithDetail("key", e.Key).
					WithDetail("value", e.Value)
			}
			layer[e.Key] = boolean.IsTrue(e.Value)
		default:
			log.Warn().Str("key", e.Key).Msg("Unknown setting ignored")
		}
	}
	return layer, nil
}

func fromFlags(f Flags) map[string]interface{} {
	layer := make(map[string]interface{})
	if f.DotfilesDir != "" {
		layer[KeyDotfilesDir] = f.DotfilesDir
	}
	for key, v := range map[string]*bool{
		KeyVerbose:  f.Verbose,
		KeyQuiet:    f.Quiet,
		KeySimulate: f.Simulate,
		KeyRoot:     f.Root,
	} {
		if v != nil {
			layer[key] = *v
		}
	}
	return layer
}

// Resolve layers defaults, the merged settings section and explicit flags,
// later layers winning, and validates the dotfiles directory.
func Resolve(flags Flags, merged []config.Entry) (Settings, error) {
	log := logging.GetLogger("settings")

	cfgLayer, err := fromConfig(merged)
	if err != nil {
		return Settings{}, err
	}

	k := koanf.New("/")
	for _, layer := range []struct {
		name   string
		values map[string]interface{}
	}{
		{"defaults", defaults()},
		{"config", cfgLayer},
		{"flags", fromFlags(flags)},
	} {
		if err := k.Load(confmap.Provider(layer.values, ""), nil); err != nil {
			return Settings{}, errors.Wrapf(err, errors.ErrInternal, "failed to load %s settings", layer.name)
		}
	}

	dir, err := resolveDotfilesDir(k.String(KeyDotfilesDir))
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		DotfilesDir: dir,
		Verbose:     k.Bool(KeyVerbose),
		Quiet:       k.Bool(KeyQuiet),
		Simulate:    k.Bool(KeySimulate),
		Root:        k.Bool(KeyRoot),
	}

	log.Debug().
		Str("dotfiles_dir", s.DotfilesDir).
		Bool("verbose", s.Verbose).
		Bool("quiet", s.Quiet).
		Bool("simulate", s.Simulate).
		Bool("root", s.Root).
		Msg("Settings resolved")

	return s, nil
}

// resolveDotfilesDir expands and validates dir. When dir is empty it
// defaults to ~/dotfiles, or ~/.dotfiles when only that one exists.
func resolveDotfilesDir(dir string) (string, error) {
	if dir == "" {
		home, err := paths.GetHomeDirectory()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, paths.DefaultDotfilesDir)
		if hidden := filepath.Join(home, paths.HiddenDotfilesDir); !paths.IsDir(dir) && paths.IsDir(hidden) {
			dir = hidden
		}
	}

	abs, err := paths.NormalizePath(dir)
	if err != nil {
		return "", err
	}
	if !paths.IsDir(abs) {
		return "", errors.Newf(errors.ErrInvalidPath, "dotfiles directory %s does not exist", abs).
			WithDetail("path", abs)
	}
	return abs, nil
}
