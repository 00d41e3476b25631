// Package commands provides the high-level operations behind the stowd CLI.
//
// Each command is implemented in its own subdirectory:
//   - run/  - Run, the stow/unstow pass over every target
//   - list/ - ListApps, used for shell completion
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"context"

	"github.com/stowd/stowd/pkg/commands/list"
	"github.com/stowd/stowd/pkg/commands/run"
	"github.com/stowd/stowd/pkg/types"
)

// RunOptions configures Run.
type RunOptions = run.RunOptions

// Run stows and unstows every target and returns the tally.
func Run(ctx context.Context, opts RunOptions) (*types.Counter, error) {
	return run.Run(ctx, opts)
}

// ListAppsOptions configures ListApps.
type ListAppsOptions = list.ListAppsOptions

// ListApps returns the app directories available for completion.
func ListApps(opts ListAppsOptions) ([]string, error) {
	return list.ListApps(opts)
}
