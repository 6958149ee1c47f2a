package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		// Cancellation is a user action (Ctrl-C), not a failure worth printing.
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "gazette:", err)
		}
		os.Exit(1)
	}
}
