package main

import (
	"fmt"
	"os"

	"github.com/scopelink/scopelink/cmd/scopelink"
	cli "github.com/scopelink/scopelink/cmd/scopelink/commands/internal"
	"github.com/scopelink/scopelink/pkg/style"
)

func main() {
	rootCmd := scopelink.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Command errors were already rendered on stderr in the active
		// format. Everything else, flag and argument errors mostly,
		// still needs printing here.
		if !cli.Silenced(err) {
			fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
