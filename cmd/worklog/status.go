// Package main provides the entry point for the worklog CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jotwood/worklog/internal/config"
	"github.com/jotwood/worklog/internal/git"
	"github.com/jotwood/worklog/internal/journal"
)

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return newStatusCmdInternal("")
}

// newStatusCmdInternal creates the status command with an optional root
// override for tests. An empty root resolves the repository root at run time.
func newStatusCmdInternal(root string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show work log state for the current month",
		Long: `Show work log state for the current month.

Reports the resolved root, the log directory, where the configuration came
from, the category order, and which days are already logged this month.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, root)
		},
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, root string) error {
	printer := newPrinter(cmd)

	if root == "" {
		root = git.WorkRoot()
	}

	cfg, err := config.Load(root)
	if err != nil {
		printer.Error(err)
		return err
	}

	store := journal.NewStore(filepath.Join(root, journal.DirName), nil, nil)
	now := time.Now()
	monthPath := store.FilePath(now)

	days, err := store.DayHeaders(now)
	if err != nil {
		printer.Error(err)
		return err
	}
	_, statErr := os.Stat(monthPath)
	monthExists := statErr == nil

	configSource := "built-in defaults"
	if config.Exists(root) {
		configSource = config.Path(root)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"root":            root,
			"log_dir":         store.Dir(),
			"config":          configSource,
			"categories":      cfg.Categories,
			"git_auto_commit": cfg.GitAutoCommit,
			"backup_dir":      cfg.BackupDir,
			"month_file":      monthPath,
			"month_exists":    monthExists,
			"days":            days,
		})
	}

	printer.Section("Work Log Status")
	printer.KeyValue("Root", root)
	printer.KeyValue("Log directory", store.Dir())
	printer.KeyValue("Config", configSource)
	printer.KeyValue("Categories", strings.Join(cfg.Categories, ", "))
	printer.KeyValue("Auto-commit", fmt.Sprintf("%t", cfg.GitAutoCommit))
	printer.KeyValue("Backup dir", cfg.BackupDir)

	if !monthExists {
		printer.KeyValue("Current month", monthPath+" (not created yet)")
		return nil
	}
	printer.KeyValue("Current month", fmt.Sprintf("%s (%d days logged)", monthPath, len(days)))
	return nil
}
