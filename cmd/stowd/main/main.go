package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/stowd/stowd/cmd/stowd"
	"github.com/stowd/stowd/pkg/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := stowd.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if output.ColorEnabled(os.Stderr) {
			pterm.Error.WithWriter(os.Stderr).Println(err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
