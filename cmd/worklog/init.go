// Package main provides the entry point for the worklog CLI.
package main

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jotwood/worklog/internal/config"
	"github.com/jotwood/worklog/internal/git"
	"github.com/jotwood/worklog/internal/output"
)

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	return newInitCmdInternal("")
}

// newInitCmdInternal creates the init command with an optional root override
// for tests. An empty root resolves the repository root at run time.
func newInitCmdInternal(root string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize work log configuration",
		Long: `Initialize work log configuration.

Writes the default worklog_config.yaml at the repository root with the
standard categories, backup directory, and git auto-commit setting. If a
configuration file already exists, asks before overwriting it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, root, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Overwrite an existing configuration without prompting")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, root string, yes bool) error {
	printer := newPrinter(cmd)

	if root == "" {
		root = git.WorkRoot()
	}
	path := config.Path(root)

	if config.Exists(root) && !yes {
		if printer.IsJSON() {
			// Non-interactive: never clobber without --yes.
			return printer.WriteJSON(map[string]any{"path": path, "status": "kept"})
		}
		if !confirmOverwrite(cmd, printer) {
			printer.Println("Keeping existing configuration.")
			return nil
		}
	}

	if err := config.Default().Write(root); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"path": path, "status": "created"})
	}
	return printer.Success(map[string]any{"message": "Configuration file created at " + path})
}

// confirmOverwrite asks before replacing an existing configuration file.
// Any answer other than y/yes keeps the file untouched.
func confirmOverwrite(cmd *cobra.Command, printer *output.Printer) bool {
	printer.Print("Configuration file exists. Overwrite? [y/N] ")

	reader := bufio.NewReader(cmd.InOrStdin())
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
