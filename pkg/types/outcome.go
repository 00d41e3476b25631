package types

// Outcome classifies what happened to a single target
type Outcome string

const (
	// OutcomeDone means stow ran and exited successfully
	OutcomeDone Outcome = "done"

	// OutcomeIgnored means the config value was not a boolean token
	OutcomeIgnored Outcome = "ignored"

	// OutcomeMissingSource means <dotfiles>/<app> does not exist
	OutcomeMissingSource Outcome = "missing_source"

	// OutcomeFailed means stow exited non-zero or could not be started
	OutcomeFailed Outcome = "failed"
)
