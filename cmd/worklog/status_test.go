package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jotwood/worklog/internal/journal"
)

func runStatusCommand(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()
	cmd := newStatusCmdInternal(root)
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// seedCurrentMonth writes a month file for the wall-clock month with two
// logged days. Status always reports on the current month.
func seedCurrentMonth(t *testing.T, root string) {
	t.Helper()
	now := time.Now()
	dir := filepath.Join(root, journal.DirName)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("creating log dir: %v", err)
	}
	content := fmt.Sprintf("# Work Log - %s\n\n## %s-01\n\n### Projects\n\n* one\n\n## %s-02\n\n### Projects\n\n* two\n",
		now.Format("January 2006"), now.Format("2006-01"), now.Format("2006-01"))
	path := filepath.Join(dir, now.Format("2006_01")+".md")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("seeding month file: %v", err)
	}
}

func TestStatusCommand_EmptyRoot(t *testing.T) {
	root := t.TempDir()

	out, err := runStatusCommand(t, root)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"Work Log Status",
		"Config: built-in defaults",
		"(not created yet)",
		"Projects, Code Changes",
		"Auto-commit: false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStatusCommand_WithMonthFile(t *testing.T) {
	root := t.TempDir()
	seedCurrentMonth(t, root)

	configPath := filepath.Join(root, "worklog_config.yaml")
	if err := os.WriteFile(configPath, []byte("categories:\n  - Focus\n"), 0o600); err != nil {
		t.Fatalf("seeding config: %v", err)
	}

	out, err := runStatusCommand(t, root)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "Config: "+configPath) {
		t.Errorf("config source not reported: %q", out)
	}
	if !strings.Contains(out, "Categories: Focus") {
		t.Errorf("configured categories not reported: %q", out)
	}
	if !strings.Contains(out, "(2 days logged)") {
		t.Errorf("day count not reported: %q", out)
	}
}

func TestStatusCommand_JSON(t *testing.T) {
	root := t.TempDir()
	seedCurrentMonth(t, root)

	cmd := newRootCmd()
	cmd.RemoveCommand(cmd.Commands()...)
	cmd.AddCommand(newStatusCmdInternal(root))

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"status", "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if result["month_exists"] != true {
		t.Errorf("month_exists = %v", result["month_exists"])
	}
	days, ok := result["days"].([]any)
	if !ok || len(days) != 2 {
		t.Errorf("days = %v, want 2 entries", result["days"])
	}
	if result["root"] != root {
		t.Errorf("root = %v, want %s", result["root"], root)
	}
}
