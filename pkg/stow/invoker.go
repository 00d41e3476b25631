package stow

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/logging"
	"github.com/stowd/stowd/pkg/paths"
	"github.com/stowd/stowd/pkg/settings"
	"github.com/stowd/stowd/pkg/types"
)

// Invoker runs stow for single targets using the run's settings
type Invoker struct {
	settings settings.Settings
	home     string
	runner   Runner
	logger   zerolog.Logger
}

// NewInvoker creates an invoker. home is the stow target for home targets.
// A nil runner means ExecRunner.
func NewInvoker(s settings.Settings, home string, runner Runner) *Invoker {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Invoker{
		settings: s,
		home:     home,
		runner:   runner,
		logger:   logging.GetLogger("stow.invoker"),
	}
}

// Command returns the executable and arguments that process t
func (i *Invoker) Command(t types.Target) (string, []string) {
	targetDir := i.home
	if t.IsRoot() {
		targetDir = paths.RootTarget
	}

	args := []string{}
	if i.settings.Simulate {
		args = append(args, "--simulate")
	}
	args = append(args,
		"--no-folding",
		"--dir="+i.settings.DotfilesDir,
		"--target="+targetDir,
	)
	if t.Action == types.ActionUnstow {
		args = append(args, "--delete")
	} else {
		args = append(args, "--restow")
	}
	args = append(args, t.App)

	if t.IsRoot() {
		return Sudo, append([]string{Binary}, args...)
	}
	return Binary, args
}

// Invoke processes one target. The returned error explains any outcome
// other than OutcomeDone and never aborts the run.
func (i *Invoker) Invoke(ctx context.Context, t types.Target) (types.Outcome, error) {
	if t.Action == types.ActionIgnore {
		return types.OutcomeIgnored, errors.Newf(errors.ErrInvalidInput,
			"%s has non-boolean value %q", t.App, t.Value).
			WithDetail("app", t.App)
	}

	if err := paths.ValidateAppName(t.App); err != nil {
		return types.OutcomeIgnored, err
	}

	source := filepath.Join(i.settings.DotfilesDir, t.App)
	if !paths.IsDir(source) {
		return types.OutcomeMissingSource, errors.Newf(errors.ErrMissingSource,
			"%s directory not found in %s.", t.App, i.settings.DotfilesDir).
			WithDetail("app", t.App).
			WithDetail("path", source)
	}

	name, args := i.Command(t)
	i.logger.Info().
		Str("target", t.String()).
		Bool("simulate", i.settings.Simulate).
		Msg("Invoking stow")

	out, err := i.runner.Run(ctx, name, args...)
	if err != nil {
		output := strings.TrimSpace(string(out))
		i.logger.Error().
			Err(err).
			Str("target", t.String()).
			Str("output", output).
			Msg("Stow failed")
		return types.OutcomeFailed, errors.Wrapf(err, errors.ErrStowExecute, "%s failed for %s", Binary, t.App).
			WithDetail("app", t.App).
			WithDetail("output", output)
	}

	i.logger.Debug().Str("target", t.String()).Msg("Stow succeeded")
	return types.OutcomeDone, nil
}
