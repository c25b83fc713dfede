package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/felixgeelhaar/bighelp/internal/config"
	"github.com/felixgeelhaar/bighelp/internal/domain/tutorial"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [category]",
	Short: "List tutorial categories or the commands in one",
	Long: `List what BigHelp can teach without opening the interactive menus.

Examples:
  bighelp topics            # Show the categories
  bighelp topics network    # Show the network commands`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeTopicArgs,
	RunE:              runTopics,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}

func runTopics(cmd *cobra.Command, args []string) error {
	store := tutorial.Default()
	if len(args) == 0 {
		return writeCategories(cmd.OutOrStdout(), store)
	}
	return writeCategory(cmd.OutOrStdout(), store, tutorial.CategoryID(args[0]))
}

func writeCategories(out io.Writer, store *tutorial.Store) error {
	title := cases.Title(language.English)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tNAME\tCOMMANDS")
	for _, cat := range store.Categories() {
		records, err := store.ListCategory(cat.ID)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\n", cat.ID, title.String(string(cat.ID)), len(records))
	}
	return w.Flush()
}

func writeCategory(out io.Writer, store *tutorial.Store, id tutorial.CategoryID) error {
	cat, err := store.Category(id)
	if err != nil {
		return topicNotFound(store, err)
	}
	records, err := store.ListCategory(id)
	if err != nil {
		return topicNotFound(store, err)
	}

	_, _ = fmt.Fprintf(out, "%s\n\n", cat.Title)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, r := range records {
		_, _ = fmt.Fprintf(w, "  %s\t%s\n", r.Name, r.Description)
	}
	return w.Flush()
}

// topicNotFound turns a store lookup failure into a user error.
func topicNotFound(store *tutorial.Store, err error) error {
	var nf *tutorial.NotFoundError
	if !errors.As(err, &nf) {
		return err
	}
	suggestion := "Run 'bighelp topics' to see the categories"
	if _, catErr := store.Category(nf.Category); catErr == nil {
		suggestion = fmt.Sprintf("Run 'bighelp topics %s' to see its commands", nf.Category)
	}
	return &config.UserError{
		Code:       config.ErrCodeTopicNotFound,
		Message:    nf.Error(),
		Suggestion: suggestion,
		Underlying: err,
	}
}

// completeTopicArgs completes a category, then a command in that category.
func completeTopicArgs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	store := tutorial.Default()
	switch len(args) {
	case 0:
		var out []string
		for _, cat := range store.Categories() {
			out = append(out, fmt.Sprintf("%s\t%s", cat.ID, cat.Title))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	case 1:
		records, err := store.ListCategory(tutorial.CategoryID(args[0]))
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		out := make([]string, 0, len(records))
		for _, r := range records {
			out = append(out, fmt.Sprintf("%s\t%s", r.Name, r.Description))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}
