// Package main provides the entry point for the worklog CLI.
package main

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jotwood/worklog/internal/git"
	"github.com/jotwood/worklog/internal/journal"
	"github.com/jotwood/worklog/internal/output"
)

// viewFlags holds the flag values for the view command.
type viewFlags struct {
	month string
	date  string
}

// newViewCmd creates the view command.
func newViewCmd() *cobra.Command {
	return newViewCmdInternal("")
}

// newViewCmdInternal creates the view command with an optional root override
// for tests. An empty root resolves the repository root at run time.
func newViewCmdInternal(root string) *cobra.Command {
	flags := &viewFlags{}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "View work log entries",
		Long: `View work log entries.

With --month, prints the whole month file verbatim. With --date, prints
that day's section only. Single-day mode is the default: with no flags,
today's section is shown.

Examples:
  worklog view                     # today's entry
  worklog view --date 2024-01-02   # one day's entry
  worklog view --month 2024-01     # the whole month file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd, root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.month, "month", "", "View the whole month (YYYY-MM)")
	cmd.Flags().StringVar(&flags.date, "date", "", "View a single day (YYYY-MM-DD, default today)")
	cmd.MarkFlagsMutuallyExclusive("month", "date")

	return cmd
}

// runView executes the view command.
func runView(cmd *cobra.Command, root string, flags *viewFlags) error {
	printer := newPrinter(cmd)

	if root == "" {
		root = git.WorkRoot()
	}
	store := journal.NewStore(filepath.Join(root, journal.DirName), nil, nil)

	if flags.month != "" {
		return viewMonth(printer, store, flags.month)
	}
	return viewDay(printer, store, flags.date)
}

// viewMonth prints the whole month file.
func viewMonth(printer *output.Printer, store *journal.Store, monthFlag string) error {
	month, err := time.Parse("2006-01", monthFlag)
	if err != nil {
		parseErr := output.NewUserError("invalid month " + monthFlag + ": expected YYYY-MM")
		printer.Error(parseErr)
		return parseErr
	}

	content, err := store.ReadMonth(month)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"month":   month.Format("2006-01"),
			"path":    store.FilePath(month),
			"content": content,
		})
	}
	printer.Print("%s", content)
	return nil
}

// viewDay prints a single day-section, defaulting to today.
func viewDay(printer *output.Printer, store *journal.Store, dateFlag string) error {
	date, err := resolveEntryDate(dateFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	section, err := store.ReadDay(date)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"date":    date.Format("2006-01-02"),
			"content": section,
		})
	}
	printer.Print("%s", section)
	return nil
}
