package stowd

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Symlink dotfiles into place with GNU stow"
	MsgVersion   = "stowd %s (commit %s, built %s)\n"

	// Flag descriptions
	MsgFlagStow        = "Stow NAME into the home directory (repeatable, or comma separated)"
	MsgFlagUnstow      = "Unstow NAME from the home directory (repeatable, or comma separated)"
	MsgFlagStowRoot    = "Stow NAME into / with sudo (repeatable, or comma separated)"
	MsgFlagUnstowRoot  = "Unstow NAME from / with sudo (repeatable, or comma separated)"
	MsgFlagPlatform    = "Use the sections of PLATFORM instead of the detected one"
	MsgFlagConfig      = "Read configuration from FILE"
	MsgFlagDotfilesDir = "Dotfiles directory (default ~/dotfiles)"
	MsgFlagVerbose     = "Print every processed app (-vv DEBUG, -vvv TRACE logs)"
	MsgFlagQuiet       = "Print errors only"
	MsgFlagSimulate    = "Run stow in simulation mode, changing nothing"
	MsgFlagNo          = "Alias for --simulate"
	MsgFlagRoot        = "Process the [root] section of the config"
	MsgFlagVersion     = "Print version information and exit"
	MsgFlagCompletion  = "Print the completion script for SHELL (bash, zsh, fish, powershell)"

	// Error messages
	MsgErrCompletionShell = "unsupported shell %q for completion"
	MsgErrSetup           = "setup failed: %w"
	MsgErrRun             = "stowd failed: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
