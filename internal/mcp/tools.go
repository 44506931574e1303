package mcp

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jotwood/worklog/internal/config"
	"github.com/jotwood/worklog/internal/journal"
)

// --- Log tool ---

// ItemInput is one bullet under a category.
type ItemInput struct {
	Text     string   `json:"text"                jsonschema:"the item text"`
	SubItems []string `json:"sub_items,omitempty" jsonschema:"nested sub-items rendered as second-level bullets"`
}

// SectionInput groups items under one category.
type SectionInput struct {
	Category string      `json:"category" jsonschema:"category label, e.g. Projects"`
	Items    []ItemInput `json:"items"    jsonschema:"items logged under this category, in order"`
}

// LogInput is the input for the log tool.
type LogInput struct {
	Date     string         `json:"date,omitempty"   jsonschema:"entry date as YYYY-MM-DD (default today)"`
	Sections []SectionInput `json:"sections"         jsonschema:"categorized items, in display order"`
	Commit   bool           `json:"commit,omitempty" jsonschema:"stage and commit the month file to git"`
}

// LogOutput is the output for the log tool.
type LogOutput struct {
	Path      string `json:"path"              jsonschema:"resolved month file path"`
	Date      string `json:"date"              jsonschema:"entry date as YYYY-MM-DD"`
	Committed bool   `json:"committed"         jsonschema:"true when the git commit succeeded"`
	Warning   string `json:"warning,omitempty" jsonschema:"non-fatal warning, e.g. a failed commit"`
}

func handleLog(store *journal.Store, cfg *config.Config) mcp.ToolHandlerFor[LogInput, LogOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LogInput) (*mcp.CallToolResult, LogOutput, error) {
		date, err := parseDateOrToday(input.Date)
		if err != nil {
			return nil, LogOutput{}, err
		}

		entry, err := buildEntry(date, input.Sections)
		if err != nil {
			return nil, LogOutput{}, err
		}
		if len(entry.Sections) == 0 {
			return nil, LogOutput{}, fmt.Errorf("entry has no items; provide at least one section with items")
		}

		path, err := store.Append(entry)
		if err != nil {
			return nil, LogOutput{}, fmt.Errorf("appending entry: %w", err)
		}

		out := LogOutput{Path: path, Date: date.Format("2006-01-02")}
		if input.Commit || cfg.GitAutoCommit {
			if commitErr := store.Commit(path); commitErr != nil {
				out.Warning = commitErr.Error()
			} else {
				out.Committed = true
			}
		}

		return nil, out, nil
	}
}

// buildEntry converts tool input sections into an Entry, dropping sections
// with no items to keep the on-disk rule (no empty category headers).
func buildEntry(date time.Time, sections []SectionInput) (*journal.Entry, error) {
	entry := &journal.Entry{Date: date}
	for _, section := range sections {
		if section.Category == "" {
			return nil, fmt.Errorf("section is missing a category")
		}
		if len(section.Items) == 0 {
			continue
		}
		items := make([]journal.Item, 0, len(section.Items))
		for _, item := range section.Items {
			if item.Text == "" {
				return nil, fmt.Errorf("item under %q is missing text", section.Category)
			}
			items = append(items, journal.Item{Text: item.Text, SubItems: item.SubItems})
		}
		entry.Sections = append(entry.Sections, journal.Section{Category: section.Category, Items: items})
	}
	return entry, nil
}

// --- View tools ---

// ViewMonthInput is the input for the view_month tool.
type ViewMonthInput struct {
	Month string `json:"month,omitempty" jsonschema:"month as YYYY-MM (default current month)"`
}

// ViewMonthOutput is the output for the view_month tool.
type ViewMonthOutput struct {
	Path    string `json:"path"    jsonschema:"month file path"`
	Content string `json:"content" jsonschema:"full month file contents"`
}

func handleViewMonth(store *journal.Store) mcp.ToolHandlerFor[ViewMonthInput, ViewMonthOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ViewMonthInput) (*mcp.CallToolResult, ViewMonthOutput, error) {
		month := time.Now()
		if input.Month != "" {
			parsed, err := time.Parse("2006-01", input.Month)
			if err != nil {
				return nil, ViewMonthOutput{}, fmt.Errorf("invalid month %q: expected YYYY-MM", input.Month)
			}
			month = parsed
		}

		content, err := store.ReadMonth(month)
		if err != nil {
			return nil, ViewMonthOutput{}, err
		}
		return nil, ViewMonthOutput{Path: store.FilePath(month), Content: content}, nil
	}
}

// ViewDayInput is the input for the view_day tool.
type ViewDayInput struct {
	Date string `json:"date,omitempty" jsonschema:"date as YYYY-MM-DD (default today)"`
}

// ViewDayOutput is the output for the view_day tool.
type ViewDayOutput struct {
	Date    string `json:"date"    jsonschema:"date as YYYY-MM-DD"`
	Content string `json:"content" jsonschema:"the day-section, header line included"`
}

func handleViewDay(store *journal.Store) mcp.ToolHandlerFor[ViewDayInput, ViewDayOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ViewDayInput) (*mcp.CallToolResult, ViewDayOutput, error) {
		date, err := parseDateOrToday(input.Date)
		if err != nil {
			return nil, ViewDayOutput{}, err
		}

		section, err := store.ReadDay(date)
		if err != nil {
			return nil, ViewDayOutput{}, err
		}
		return nil, ViewDayOutput{Date: date.Format("2006-01-02"), Content: section}, nil
	}
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	LogDir        string   `json:"log_dir"          jsonschema:"work_logs directory path"`
	Categories    []string `json:"categories"       jsonschema:"configured category order"`
	GitAutoCommit bool     `json:"git_auto_commit"  jsonschema:"whether log entries auto-commit"`
	MonthFile     string   `json:"month_file"       jsonschema:"current month file path"`
	MonthExists   bool     `json:"month_exists"     jsonschema:"whether the current month file exists"`
	Days          []string `json:"days,omitempty"   jsonschema:"day headers already present this month, in file order"`
}

func handleStatus(store *journal.Store, cfg *config.Config) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		now := time.Now()
		days, err := store.DayHeaders(now)
		if err != nil {
			return nil, StatusOutput{}, err
		}

		path := store.FilePath(now)
		_, statErr := os.Stat(path)

		return nil, StatusOutput{
			LogDir:        store.Dir(),
			Categories:    cfg.Categories,
			GitAutoCommit: cfg.GitAutoCommit,
			MonthFile:     path,
			MonthExists:   statErr == nil,
			Days:          days,
		}, nil
	}
}

// parseDateOrToday parses a YYYY-MM-DD date, defaulting to today when empty.
func parseDateOrToday(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return parsed, nil
}
