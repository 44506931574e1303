// Package mcp provides a Model Context Protocol server for worklog.
// It exposes journal operations as MCP tools so agent environments can
// append and read work-log entries non-interactively.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jotwood/worklog/internal/config"
	"github.com/jotwood/worklog/internal/journal"
)

// NewServer creates an MCP server with all worklog tools registered.
func NewServer(version string, store *journal.Store, cfg *config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "worklog",
		Version: version,
	}, nil)
	registerTools(server, store, cfg)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all worklog tools to the server.
func registerTools(server *mcp.Server, store *journal.Store, cfg *config.Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "log",
		Description: "Append a categorized work-log entry to the month file. Items may carry nested sub-items. Optionally commits the file to git.",
		Annotations: writeAnnotations(),
	}, handleLog(store, cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "view_month",
		Description: "Return the full work-log markdown for a month (YYYY-MM, default: current month).",
		Annotations: readOnlyAnnotations(),
	}, handleViewMonth(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "view_day",
		Description: "Return the day-section of the work log for a date (YYYY-MM-DD, default: today).",
		Annotations: readOnlyAnnotations(),
	}, handleViewDay(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show work-log state: log directory, configured categories, and the days already logged this month.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(store, cfg))
}
