// Package testutil provides helpers shared by stowd's package tests:
// isolated home directories, dotfiles trees and a stand-in stow binary.
// Nothing here touches the real home directory.
package testutil
