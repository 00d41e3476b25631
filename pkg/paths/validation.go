package paths

import (
	"strings"

	"github.com/stowd/stowd/pkg/errors"
)

// ValidateAppName ensures an app name can be joined onto the dotfiles
// directory without escaping it. App names must:
// - Not be empty
// - Not contain path separators
// - Not be . or ..
// - Not contain control characters
func ValidateAppName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "app name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "app name %q cannot contain path separators", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrInvalidInput, "app name cannot be '.' or '..'")
	}

	for _, r := range name {
		if r < 32 {
			return errors.Newf(errors.ErrInvalidInput, "app name %q contains control characters", name)
		}
	}

	return nil
}
