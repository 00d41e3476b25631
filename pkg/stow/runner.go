package stow

import (
	"context"
	"os/exec"

	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/logging"
)

// Binary is the name of the stow executable looked up on PATH
const Binary = "stow"

// Sudo prefixes root target invocations
const Sudo = "sudo"

// Runner runs an external command and returns its combined output
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// Run executes name with args and waits for it to finish
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	logging.LogCommand(name, args)
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// CheckInstalled verifies stow can be found on PATH
func CheckInstalled() error {
	path, err := exec.LookPath(Binary)
	if err != nil {
		return errors.Wrap(err, errors.ErrDependency, "stow is not installed or not on PATH").
			WithDetail("binary", Binary)
	}
	log := logging.GetLogger("stow")
	log.Debug().Str("path", path).Msg("Found stow")
	return nil
}
