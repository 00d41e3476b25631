package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// SetupHome points HOME and the XDG state directory at fresh temp
// directories and unsets XDG_CONFIG_HOME. It returns the home directory.
func SetupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("XDG_CONFIG_HOME", "")
	if err := os.Unsetenv("XDG_CONFIG_HOME"); err != nil {
		t.Fatalf("Failed to unset XDG_CONFIG_HOME: %v", err)
	}

	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return home
}

// CreateDotfiles creates a dotfiles directory under parent with one
// subdirectory per app and returns its path.
func CreateDotfiles(t *testing.T, parent string, apps ...string) string {
	t.Helper()

	dir := CreateDir(t, parent, "dotfiles")
	for _, app := range apps {
		CreateFile(t, dir, filepath.Join(app, "."+app+"rc"), "# "+app+"\n")
	}
	return dir
}

// FakeStow installs an executable named stow in a temp directory placed
// first on PATH. The script appends its arguments to the returned log file
// and exits with status 0, or 1 when its last argument is failApp.
func FakeStow(t *testing.T, failApp string) string {
	t.Helper()

	binDir := t.TempDir()
	logFile := filepath.Join(binDir, "stow.log")
	script := "#!/bin/sh\n" +
		"echo \"$@\" >> \"" + logFile + "\"\n" +
		"for last; do :; done\n" +
		"if [ -n \"" + failApp + "\" ] && [ \"$last\" = \"" + failApp + "\" ]; then\n" +
		"  echo \"stow: conflict\" >&2\n" +
		"  exit 1\n" +
		"fi\n" +
		"exit 0\n"

	if err := os.WriteFile(filepath.Join(binDir, "stow"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake stow: %v", err)
	}

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return logFile
}
