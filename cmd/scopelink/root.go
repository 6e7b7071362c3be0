// Package scopelink assembles the scopelink command tree.
package scopelink

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/scopelink/scopelink/cmd/scopelink/commands/completion"
	"github.com/scopelink/scopelink/cmd/scopelink/commands/deps"
	cli "github.com/scopelink/scopelink/cmd/scopelink/commands/internal"
	"github.com/scopelink/scopelink/cmd/scopelink/commands/link"
	"github.com/scopelink/scopelink/cmd/scopelink/commands/status"
	"github.com/scopelink/scopelink/cmd/scopelink/commands/topics"
	"github.com/scopelink/scopelink/cmd/scopelink/commands/unlink"
	"github.com/scopelink/scopelink/cmd/scopelink/commands/version"
	info "github.com/scopelink/scopelink/internal/version"
	cobrax "github.com/scopelink/scopelink/pkg/cobrax/topics"
	"github.com/scopelink/scopelink/pkg/help"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "scopelink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: info.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	flags.Bool(cli.FlagDryRun, false, MsgFlagDryRun)
	flags.Bool(cli.FlagForce, false, MsgFlagForce)
	flags.String(cli.FlagFormat, "auto", MsgFlagFormat)
	flags.StringArray(cli.FlagRoot, nil, MsgFlagRoot)

	// Command groups
	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(link.NewCommand())
	rootCmd.AddCommand(unlink.NewCommand())
	rootCmd.AddCommand(status.NewCommand())
	rootCmd.AddCommand(deps.NewCommand())
	rootCmd.AddCommand(topics.NewCommand())
	rootCmd.AddCommand(version.NewCommand())
	rootCmd.AddCommand(completion.NewCommand())

	initHelp(rootCmd)

	return rootCmd
}

// initHelp wires the embedded topic store into the help system. Help
// stays functional when the store cannot load, just without topics.
func initHelp(rootCmd *cobra.Command) {
	store, err := help.NewStore()
	if err != nil {
		return
	}

	opts := cobrax.Options{Renderer: &cobrax.PlainRenderer{}}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		opts.Renderer = cobrax.NewGlamourRenderer()
	}
	_ = cobrax.InitializeWithOptions(rootCmd, store, opts)
}
