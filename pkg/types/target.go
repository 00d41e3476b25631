package types

import "fmt"

// TargetRoot selects where an app's symlinks are created
type TargetRoot string

const (
	// TargetHome links into the user's home directory
	TargetHome TargetRoot = "~"

	// TargetRootDir links into the filesystem root and needs elevated privileges
	TargetRootDir TargetRoot = "/"
)

// Action is what a run does with one app
type Action string

const (
	// ActionStow creates (or refreshes) the app's symlinks
	ActionStow Action = "stow"

	// ActionUnstow removes the app's symlinks
	ActionUnstow Action = "unstow"

	// ActionIgnore marks a config entry whose value is not a boolean token
	ActionIgnore Action = "ignore"
)

// Target is one unit of work: an app, the action to take and where.
// Targets are built transiently and consumed immediately by a run.
type Target struct {
	Root   TargetRoot
	Action Action
	App    string

	// Value is the raw config value the target came from, empty for CLI targets
	Value string
}

// IsRoot reports whether the target links into the filesystem root
func (t Target) IsRoot() bool {
	return t.Root == TargetRootDir
}

// String renders the target the way verbose output prints it
func (t Target) String() string {
	return fmt.Sprintf("[%s] %s %s", t.Root, t.Action, t.App)
}
