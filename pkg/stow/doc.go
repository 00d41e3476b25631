// Package stow drives the external GNU stow program: one invocation per
// target, restowing or deleting an app directory into the home directory
// or, through sudo, into the filesystem root.
package stow
