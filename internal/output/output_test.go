package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	data := map[string]any{
		"path": "work_logs/2024_01.md",
		"date": "2024-01-02",
	}

	if err := printer.Success(data); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["path"] != "work_logs/2024_01.md" {
		t.Errorf("path = %v", result["path"])
	}
	if result["date"] != "2024-01-02" {
		t.Errorf("date = %v", result["date"])
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewUserError("no logs found for specified period"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["error"] != "no logs found for specified period" {
		t.Errorf("error = %v", result["error"])
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

func TestPrinter_Human_Error_GoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(NewSystemError("git command failed"))

	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	if got := errOut.String(); got != "Error: git command failed\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestPrinter_Human_Error_UntypedError(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Error(errors.New("plain failure"))

	if got := buf.String(); got != "Error: plain failure\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrinter_Warn(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Warn("committing to git: %s", "boom")

	if !strings.Contains(errOut.String(), "Warning: committing to git: boom") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestPrinter_Human_Success_Message(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	if err := printer.Success(map[string]any{"message": "done"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if got := buf.String(); got != "done\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrinter_KeyValueAndSection(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Section("Work Log Status")
	printer.KeyValue("Root", "/repo")

	got := buf.String()
	if !strings.Contains(got, "Work Log Status") {
		t.Errorf("missing section title: %q", got)
	}
	if !strings.Contains(got, "Root: /repo") {
		t.Errorf("missing key-value: %q", got)
	}
}
