package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/bighelp/internal/domain/tutorial"
	"github.com/felixgeelhaar/bighelp/internal/export"
)

var showCmd = &cobra.Command{
	Use:   "show <category> <command>",
	Short: "Print the lesson for one command",
	Long: `Print everything BigHelp knows about a command: what it does,
examples to try, a tip and a safety note.

Examples:
  bighelp show basic ls
  bighelp show network ping --markdown`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeTopicArgs,
	RunE:              runShow,
}

var showMarkdown bool

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "Print the lesson as Markdown")
}

func runShow(cmd *cobra.Command, args []string) error {
	store := tutorial.Default()
	record, err := store.Lookup(tutorial.CategoryID(args[0]), args[1])
	if err != nil {
		return topicNotFound(store, err)
	}

	if showMarkdown {
		_, err = fmt.Fprint(cmd.OutOrStdout(), export.Markdown(record))
		return err
	}
	return export.WriteText(cmd.OutOrStdout(), record)
}
