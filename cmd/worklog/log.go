// Package main provides the entry point for the worklog CLI.
package main

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jotwood/worklog/internal/config"
	"github.com/jotwood/worklog/internal/git"
	"github.com/jotwood/worklog/internal/journal"
	"github.com/jotwood/worklog/internal/output"
)

// logFlags holds all flag values for the log command.
type logFlags struct {
	git   bool
	noGit bool
	date  string
}

// logDeps carries the collaborators the log command needs. Tests inject a
// root and git funcs; a nil deps resolves everything at run time.
type logDeps struct {
	root      string
	gitAdd    journal.GitAddFunc
	gitCommit journal.GitCommitFunc
}

// newLogCmd creates the log command.
func newLogCmd() *cobra.Command {
	return newLogCmdInternal(nil)
}

// newLogCmdInternal creates the log command with optional dependency injection.
func newLogCmdInternal(deps *logDeps) *cobra.Command {
	flags := &logFlags{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a daily work log entry",
		Long: `Record a daily work log entry.

Prompts for items under each configured category, one per line. A blank
line moves on; after each item you can add indented sub-items the same
way. The entry is appended to work_logs/YYYY_MM.md at the repository root.

Examples:
  worklog log                     # log today's entry
  worklog log --date 2024-01-02   # backfill an entry
  worklog log --git               # commit the updated file
  worklog log --no-git            # skip the commit even if configured`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLog(cmd, deps, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.git, "git", false, "Commit the updated log to git")
	cmd.Flags().BoolVar(&flags.noGit, "no-git", false, "Skip the git commit even if configured")
	cmd.Flags().StringVar(&flags.date, "date", "", "Override entry date (YYYY-MM-DD, default today)")
	cmd.MarkFlagsMutuallyExclusive("git", "no-git")

	return cmd
}

// runLog executes the log command.
func runLog(cmd *cobra.Command, deps *logDeps, flags *logFlags) error {
	printer := newPrinter(cmd)

	if deps == nil {
		deps = &logDeps{root: git.WorkRoot()}
	}

	cfg, err := config.Load(deps.root)
	if err != nil {
		printer.Error(err)
		return err
	}

	entryDate, err := resolveEntryDate(flags.date)
	if err != nil {
		printer.Error(err)
		return err
	}

	autoCommit := cfg.GitAutoCommit
	if flags.git {
		autoCommit = true
	}
	if flags.noGit {
		autoCommit = false
	}

	if !printer.IsJSON() {
		printer.Println("Creating new work log entry...")
		printer.Println()
		printer.Println("Daily Work Log Entry")
		printer.Println("====================")
	}

	var promptf journal.PromptFunc
	if !printer.IsJSON() {
		promptf = printer.Print
	}
	collector := journal.NewCollector(cmd.InOrStdin(), promptf)
	entry := collector.Collect(entryDate, cfg.Categories)

	store := journal.NewStore(filepath.Join(deps.root, journal.DirName), deps.gitAdd, deps.gitCommit)
	path, err := store.Append(entry)
	if err != nil {
		printer.Error(err)
		return err
	}

	committed := false
	warning := ""
	if autoCommit {
		if commitErr := store.Commit(path); commitErr != nil {
			// Commit failure is reported but never aborts: the entry is
			// already on disk. In JSON mode the warning travels inside the
			// result object so stdout stays a single document.
			warning = commitErr.Error()
			if !printer.IsJSON() {
				printer.Warn("committing to git: %s", warning)
			}
		} else {
			committed = true
		}
	}

	if printer.IsJSON() {
		result := map[string]any{
			"path":      path,
			"date":      entryDate.Format("2006-01-02"),
			"committed": committed,
		}
		if warning != "" {
			result["warning"] = warning
		}
		return printer.WriteJSON(result)
	}

	printer.Println()
	if err := printer.Success(map[string]any{"message": "Work log updated successfully!"}); err != nil {
		return err
	}
	printer.Println("File location: " + path)
	if committed {
		printer.Println("Changes committed to git.")
	}
	return nil
}

// resolveEntryDate parses the --date flag, defaulting to today.
func resolveEntryDate(flag string) (time.Time, error) {
	if flag == "" {
		return time.Now(), nil
	}
	parsed, err := time.Parse("2006-01-02", flag)
	if err != nil {
		return time.Time{}, output.NewUserError("invalid date " + flag + ": expected YYYY-MM-DD")
	}
	return parsed, nil
}
