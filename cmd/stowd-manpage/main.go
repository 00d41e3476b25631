// Command stowd-manpage renders the stowd(1) man page. With no argument the
// page goes to stdout; with a directory argument it is written there as
// stowd.1, which is what release packaging installs.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"
	"github.com/stowd/stowd/cmd/stowd"
	"github.com/stowd/stowd/internal/version"
)

const manSection = "1"

func manHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "STOWD",
		Section: manSection,
		Source:  fmt.Sprintf("stowd %s (%s)", version.Version, version.Commit),
		Manual:  "User Commands",
	}
}

// render writes the man page to w
func render(w io.Writer) error {
	return doc.GenMan(stowd.NewRootCmd(), manHeader(), w)
}

// renderTo writes stowd.1 into dir, creating dir when needed
func renderTo(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "stowd."+manSection)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return "", err
	}
	return path, f.Close()
}

func main() {
	var err error
	switch len(os.Args) {
	case 1:
		err = render(os.Stdout)
	case 2:
		var path string
		path, err = renderTo(os.Args[1])
		if err == nil {
			fmt.Fprintln(os.Stderr, path)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [DIR]\n", os.Args[0])
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
