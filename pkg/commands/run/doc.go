// Package run implements the single stowd operation: stow and unstow every
// target named on the command line or in stowd.cfg.
package run
