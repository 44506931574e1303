// Package main provides the entry point for the worklog CLI.
package main

import (
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/jotwood/worklog/internal/config"
	"github.com/jotwood/worklog/internal/git"
	"github.com/jotwood/worklog/internal/journal"
	worklogmcp "github.com/jotwood/worklog/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run worklog as a Model Context Protocol (MCP) server over stdio.

This exposes the work log as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc),
so an agent can journal work without the interactive prompts.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "worklog": {
        "command": "worklog",
        "args": ["serve"]
      }
    }
  }

Available tools: log, view_month, view_day, status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := git.WorkRoot()
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			store := journal.NewStore(filepath.Join(root, journal.DirName), nil, nil)
			server := worklogmcp.NewServer(buildVersion(), store, cfg)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
