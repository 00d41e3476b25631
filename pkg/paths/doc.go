// Package paths provides path handling for stowd.
//
// It handles:
//
//   - Home directory lookup and ~ expansion
//   - The home and root stow targets
//   - XDG state directory (log file and run lock)
//   - Validation of app names before they are joined onto the dotfiles directory
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - HOME: the user's home directory, used when os.UserHomeDir fails
//   - XDG_STATE_HOME: base for the state directory (default: ~/.local/state)
package paths
