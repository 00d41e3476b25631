// Package types defines the core types used throughout stowd: the Target
// entries a run processes, the Outcome of each invocation and the Counter
// that tallies them for the final summary.
package types
