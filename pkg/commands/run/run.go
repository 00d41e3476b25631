package run

import (
	"context"
	"io"
	"os"

	"github.com/stowd/stowd/pkg/config"
	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/lock"
	"github.com/stowd/stowd/pkg/logging"
	"github.com/stowd/stowd/pkg/output"
	"github.com/stowd/stowd/pkg/paths"
	"github.com/stowd/stowd/pkg/platform"
	"github.com/stowd/stowd/pkg/settings"
	"github.com/stowd/stowd/pkg/stow"
	"github.com/stowd/stowd/pkg/targets"
	"github.com/stowd/stowd/pkg/types"
)

// RunOptions defines the options for the Run command.
type RunOptions struct {
	// Lists holds the app names given on the command line.
	Lists targets.Lists
	// Flags holds the settings given explicitly on the command line.
	Flags settings.Flags
	// ConfigPath is the -c value. Empty means discover.
	ConfigPath string
	// Platform overrides the detected platform tag. A non-empty value also
	// makes the config targets run alongside command line targets.
	Platform string
	// Runner runs stow. Nil means the real binary, which must be on PATH.
	Runner stow.Runner
	// LockPath overrides the run lock location.
	LockPath string
	// Out and ErrOut receive user-facing output. Nil means stdout and stderr.
	Out    io.Writer
	ErrOut io.Writer
	// NoColor disables styled output.
	NoColor bool
}

// Run resolves configuration and settings, then invokes stow once per
// target in order and prints a summary. Per-target problems are counted
// and reported; only setup failures are returned as errors.
func Run(ctx context.Context, opts RunOptions) (*types.Counter, error) {
	log := logging.GetLogger("commands.run")
	done := logging.LogOperationStart(log, "run")
	defer done()

	if opts.Runner == nil {
		if err := stow.CheckInstalled(); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(opts.ConfigPath, opts.Flags.DotfilesDir)
	if err != nil {
		return nil, err
	}

	host := platform.Current(opts.Platform)
	log.Debug().
		Str("config", cfg.Path).
		Str("platform", host.Platform).
		Str("hostname", host.Hostname).
		Msg("Config selected")

	s, err := settings.Resolve(opts.Flags, cfg.Merged(config.SectionSettings, host))
	if err != nil {
		return nil, err
	}

	out, errOut := opts.Out, opts.ErrOut
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	printer := output.NewPrinter(out, errOut, output.Options{
		Quiet:   s.Quiet,
		Verbose: s.Verbose,
		NoColor: opts.NoColor,
	})

	lockPath := opts.LockPath
	if lockPath == "" {
		lockPath = lock.DefaultPath()
	}
	runLock, err := lock.Acquire(lockPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := runLock.Release(); err != nil {
			log.Warn().Err(err).Str("path", runLock.Path()).Msg("Failed to release run lock")
		}
	}()

	if s.Simulate {
		printer.Banner()
	}

	home, err := paths.HomeTarget()
	if err != nil {
		return nil, err
	}

	list := targets.FromArgs(opts.Lists)
	if opts.Lists.IsEmpty() || opts.Platform != "" {
		list = append(list, targets.FromConfig(
			cfg.Merged(config.SectionHome, host),
			cfg.Merged(config.SectionRoot, host),
			s.Root,
		)...)
	}
	log.Info().Int("targets", len(list)).Msg("Target list built")

	invoker := stow.NewInvoker(s, home, opts.Runner)
	counter := &types.Counter{}
	for _, t := range list {
		if err := ctx.Err(); err != nil {
			printer.Summary(*counter)
			return counter, errors.Wrap(err, errors.ErrInternal, "run interrupted")
		}

		outcome, err := invoker.Invoke(ctx, t)
		counter.Record(t, outcome)
		printer.Outcome(t, outcome, err)

		log.Debug().
			Str("target", t.String()).
			Str("outcome", string(outcome)).
			Msg("Target processed")
	}

	printer.Summary(*counter)
	return counter, nil
}
