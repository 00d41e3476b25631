// Package targets builds the ordered list of stow targets for a run, from
// the command line and from the home and root sections of stowd.cfg.
package targets

import (
	"github.com/stowd/stowd/pkg/boolean"
	"github.com/stowd/stowd/pkg/config"
	"github.com/stowd/stowd/pkg/types"
)

// Lists holds the app names given on the command line
type Lists struct {
	// Stow holds positional names and -s names
	Stow []string
	// Unstow holds -u names
	Unstow []string
	// StowRoot holds -S names
	StowRoot []string
	// UnstowRoot holds -U names
	UnstowRoot []string
}

// IsEmpty reports whether no app was named on the command line
func (l Lists) IsEmpty() bool {
	return len(l.Stow)+len(l.Unstow)+len(l.StowRoot)+len(l.UnstowRoot) == 0
}

// FromArgs emits home stow, home unstow, root stow and root unstow targets
// in that order, each group in the order given.
func FromArgs(l Lists) []types.Target {
	var out []types.Target
	groups := []struct {
		names  []string
		root   types.TargetRoot
		action types.Action
	}{
		{l.Stow, types.TargetHome, types.ActionStow},
		{l.Unstow, types.TargetHome, types.ActionUnstow},
		{l.StowRoot, types.TargetRootDir, types.ActionStow},
		{l.UnstowRoot, types.TargetRootDir, types.ActionUnstow},
	}
	for _, g := range groups {
		for _, name := range g.names {
			out = append(out, types.Target{Root: g.root, Action: g.action, App: name})
		}
	}
	return out
}

// FromConfig turns the merged home entries, and the merged root entries
// when allowRoot is set, into targets. Entries whose value is not a
// boolean token become ActionIgnore targets.
func FromConfig(home, root []config.Entry, allowRoot bool) []types.Target {
	out := fromEntries(nil, home, types.TargetHome)
	if allowRoot {
		out = fromEntries(out, root, types.TargetRootDir)
	}
	return out
}

func fromEntries(out []types.Target, entries []config.Entry, root types.TargetRoot) []types.Target {
	for _, e := range entries {
		t := types.Target{Root: root, App: e.Key, Value: e.Value}
		switch {
		case !boolean.IsBool(e.Value):
			t.Action = types.ActionIgnore
		case boolean.IsTrue(e.Value):
			t.Action = types.ActionStow
		default:
			t.Action = types.ActionUnstow
		}
		out = append(out, t)
	}
	return out
}
