// Package topics provides a pluggable, topic-based help system for
// Cobra CLI applications. It extends the default Cobra help to serve
// long-form topics from any Source, making CLIs self-documenting.
package topics

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one long-form help document.
type Topic struct {
	// Name is the argument users pass to read the topic.
	Name string

	// Summary is a one-line description for listings.
	Summary string

	// Content is the full document body, in markdown.
	Content string
}

// Source serves topics to the help system.
type Source interface {
	// List returns every available topic, sorted by name.
	List() []Topic

	// Lookup finds one topic by name.
	Lookup(name string) (Topic, bool)
}

// Options configures the help integration.
type Options struct {
	// Renderer formats topic content before display. Defaults to
	// PlainRenderer.
	Renderer Renderer
}

// Initialize extends rootCmd's help with topics served from source.
func Initialize(rootCmd *cobra.Command, source Source) error {
	return InitializeWithOptions(rootCmd, source, Options{})
}

// InitializeWithOptions sets up the topic-based help system with
// custom options.
func InitializeWithOptions(rootCmd *cobra.Command, source Source, opts Options) error {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = &PlainRenderer{}
	}

	originalHelp := rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			for _, topic := range source.List() {
				completions = append(completions, topic.Name)
			}
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				originalHelp(rootCmd, []string{})
				return
			}
			if args[0] == "topics" {
				WriteList(out, rootCmd.Name(), source)
				return
			}
			if topic, ok := lookup(source, args[0]); ok {
				fmt.Fprint(out, renderer.Render(topic.Content))
				return
			}
			originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)
	// Keeps Execute's default-help initialization from adding a second
	// help command alongside ours.
	rootCmd.SetHelpCommand(helpCmd)

	// --help with a topic argument serves the topic too
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := lookup(source, args[0]); ok {
				fmt.Fprint(cmd.OutOrStdout(), renderer.Render(topic.Content))
				return
			}
		}
		originalHelp(cmd, args)
	})

	return nil
}

// WriteList prints the topic listing with one summary line per topic.
func WriteList(out io.Writer, appName string, source Source) {
	topics := source.List()
	if len(topics) == 0 {
		fmt.Fprintln(out, "No help topics available.")
		return
	}

	fmt.Fprintln(out, "Available help topics:")
	for _, topic := range topics {
		if topic.Summary != "" {
			fmt.Fprintf(out, "  %-12s %s\n", topic.Name, topic.Summary)
		} else {
			fmt.Fprintf(out, "  %s\n", topic.Name)
		}
	}
	fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}

// lookup resolves a topic name, accepting flag-style spellings like
// --clean for a "clean" topic.
func lookup(source Source, name string) (Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")
	return source.Lookup(name)
}
