// Package output renders what a run did for the user: the simulation
// banner, per-target diagnostics and the closing summary.
//
// Colour is used only when the destination is a terminal, NO_COLOR is
// unset and the terminal reports colour support. Everything written with
// colour disabled is plain text, which is what the tests compare against.
package output
