// Package lock keeps two stowd runs from working on the same target tree
// at once, using an advisory file lock under the XDG state directory.
package lock

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/logging"
	"github.com/stowd/stowd/pkg/paths"
)

// FileName is the lock file kept in the stowd state directory
const FileName = "stowd.lock"

// Lock is a held run lock
type Lock struct {
	path string
	fl   *flock.Flock
}

// DefaultPath returns $XDG_STATE_HOME/stowd/stowd.lock
func DefaultPath() string {
	return filepath.Join(paths.StateDir(), FileName)
}

// Acquire takes the lock at path without blocking. A lock already held by
// another process is reported as ErrLocked.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to create lock directory for %s", path)
	}

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to acquire lock %s", path)
	}
	if !ok {
		return nil, errors.Newf(errors.ErrLocked, "another stowd run holds %s", path).
			WithDetail("path", path)
	}

	log := logging.GetLogger("lock")
	log.Debug().Str("path", path).Msg("Run lock acquired")
	return &Lock{path: path, fl: fl}, nil
}

// Path returns the lock file path
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	if err := l.fl.Unlock(); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to release lock %s", l.path)
	}
	log := logging.GetLogger("lock")
	log.Debug().Str("path", l.path).Msg("Run lock released")
	return nil
}
