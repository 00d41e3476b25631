// Command stowd-completions writes shell completion scripts at packaging
// time, without going through the stowd flag parser.
package main

import (
	"fmt"
	"os"

	"github.com/stowd/stowd/cmd/stowd"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell>\n", os.Args[0])
		os.Exit(1)
	}

	shell := os.Args[1]
	if err := stowd.GenCompletion(stowd.NewRootCmd(), os.Stdout, shell); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
		os.Exit(1)
	}
}
