package stow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/settings"
	"github.com/stowd/stowd/pkg/testutil"
	"github.com/stowd/stowd/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls  []call
	failOn string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{name, args})
	if f.failOn != "" && args[len(args)-1] == f.failOn {
		return []byte("WARNING! stowing would cause conflicts\n"), fmt.Errorf("exit status 1")
	}
	return nil, nil
}

func TestCommand(t *testing.T) {
	dotfiles := "/home/u/dotfiles"
	tests := []struct {
		name     string
		simulate bool
		target   types.Target
		wantName string
		wantArgs []string
	}{
		{
			name:     "home stow",
			target:   types.Target{Root: types.TargetHome, Action: types.ActionStow, App: "vim"},
			wantName: "stow",
			wantArgs: []string{"--no-folding", "--dir=/home/u/dotfiles", "--target=/home/u", "--restow", "vim"},
		},
		{
			name:     "home unstow simulated",
			simulate: true,
			target:   types.Target{Root: types.TargetHome, Action: types.ActionUnstow, App: "tmux"},
			wantName: "stow",
			wantArgs: []string{"--simulate", "--no-folding", "--dir=/home/u/dotfiles", "--target=/home/u", "--delete", "tmux"},
		},
		{
			name:     "root stow uses sudo",
			target:   types.Target{Root: types.TargetRootDir, Action: types.ActionStow, App: "etc"},
			wantName: "sudo",
			wantArgs: []string{"stow", "--no-folding", "--dir=/home/u/dotfiles", "--target=/", "--restow", "etc"},
		},
		{
			name:     "root unstow simulated",
			simulate: true,
			target:   types.Target{Root: types.TargetRootDir, Action: types.ActionUnstow, App: "etc"},
			wantName: "sudo",
			wantArgs: []string{"stow", "--simulate", "--no-folding", "--dir=/home/u/dotfiles", "--target=/", "--delete", "etc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInvoker(settings.Settings{DotfilesDir: dotfiles, Simulate: tt.simulate}, "/home/u", &fakeRunner{})
			name, args := inv.Command(tt.target)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestInvokeOutcomes(t *testing.T) {
	home := t.TempDir()
	dotfiles := testutil.CreateDotfiles(t, home, "vim", "broken")

	runner := &fakeRunner{failOn: "broken"}
	inv := NewInvoker(settings.Settings{DotfilesDir: dotfiles}, home, runner)
	ctx := context.Background()

	t.Run("done", func(t *testing.T) {
		outcome, err := inv.Invoke(ctx, types.Target{Root: types.TargetHome, Action: types.ActionStow, App: "vim"})
		require.NoError(t, err)
		assert.Equal(t, types.OutcomeDone, outcome)
	})

	t.Run("ignored token never runs", func(t *testing.T) {
		before := len(runner.calls)
		outcome, err := inv.Invoke(ctx, types.Target{Root: types.TargetHome, Action: types.ActionIgnore, App: "vim", Value: "maybe"})
		assert.Error(t, err)
		assert.Equal(t, types.OutcomeIgnored, outcome)
		assert.Len(t, runner.calls, before)
	})

	t.Run("missing source", func(t *testing.T) {
		before := len(runner.calls)
		outcome, err := inv.Invoke(ctx, types.Target{Root: types.TargetHome, Action: types.ActionStow, App: "emacs"})
		assert.Equal(t, types.OutcomeMissingSource, outcome)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMissingSource))
		assert.Equal(t, fmt.Sprintf("[MISSING_SOURCE] emacs directory not found in %s.", dotfiles), err.Error())
		assert.Len(t, runner.calls, before)
	})

	t.Run("path escape ignored", func(t *testing.T) {
		outcome, err := inv.Invoke(ctx, types.Target{Root: types.TargetHome, Action: types.ActionStow, App: "../etc"})
		assert.Equal(t, types.OutcomeIgnored, outcome)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("failure carries output", func(t *testing.T) {
		outcome, err := inv.Invoke(ctx, types.Target{Root: types.TargetHome, Action: types.ActionStow, App: "broken"})
		assert.Equal(t, types.OutcomeFailed, outcome)
		assert.True(t, errors.IsErrorCode(err, errors.ErrStowExecute))
		assert.Equal(t, "WARNING! stowing would cause conflicts", errors.GetErrorDetails(err)["output"])
	})
}

func TestInvokeSourceMustBeDirectory(t *testing.T) {
	home := t.TempDir()
	dotfiles := testutil.CreateDir(t, home, "dotfiles")
	testutil.CreateFile(t, dotfiles, "vim", "not a directory")

	inv := NewInvoker(settings.Settings{DotfilesDir: dotfiles}, home, &fakeRunner{})
	outcome, _ := inv.Invoke(context.Background(), types.Target{Root: types.TargetHome, Action: types.ActionStow, App: "vim"})
	assert.Equal(t, types.OutcomeMissingSource, outcome)
}

func TestExecRunnerWithFakeStow(t *testing.T) {
	home := t.TempDir()
	dotfiles := testutil.CreateDotfiles(t, home, "vim", "tmux")
	logFile := testutil.FakeStow(t, "tmux")

	require.NoError(t, CheckInstalled())

	inv := NewInvoker(settings.Settings{DotfilesDir: dotfiles, Simulate: true}, home, nil)
	ctx := context.Background()

	outcome, err := inv.Invoke(ctx, types.Target{Root: types.TargetHome, Action: types.ActionStow, App: "vim"})
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeDone, outcome)

	outcome, err = inv.Invoke(ctx, types.Target{Root: types.TargetHome, Action: types.ActionUnstow, App: "tmux"})
	assert.Equal(t, types.OutcomeFailed, outcome)
	assert.Equal(t, "stow: conflict", errors.GetErrorDetails(err)["output"])

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		fmt.Sprintf("--simulate --no-folding --dir=%s --target=%s --restow vim", dotfiles, home),
		fmt.Sprintf("--simulate --no-folding --dir=%s --target=%s --delete tmux", dotfiles, home),
	}, lines)
}

func TestCheckInstalledMissing(t *testing.T) {
	t.Setenv("PATH", filepath.Join(t.TempDir(), "empty"))

	err := CheckInstalled()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDependency))
}
