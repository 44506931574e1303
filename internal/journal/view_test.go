package journal

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jotwood/worklog/internal/output"
)

func jan(day int) time.Time {
	return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
}

func seedMonth(t *testing.T) *Store {
	t.Helper()
	store, _ := newTestStore(t)
	first := entryFor(1)
	first.Sections[0].Items = []Item{{Text: "reviewed the parser", SubItems: []string{"left comments"}}}
	if _, err := store.Append(first); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if _, err := store.Append(entryFor(2)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	return store
}

func TestStore_ReadDay(t *testing.T) {
	store := seedMonth(t)

	section, err := store.ReadDay(jan(1))
	if err != nil {
		t.Fatalf("ReadDay() error = %v", err)
	}

	if !strings.HasPrefix(section, "## 2024-01-01") {
		t.Errorf("section should start with the day header:\n%s", section)
	}
	if !strings.Contains(section, "reviewed the parser") {
		t.Errorf("section missing item text:\n%s", section)
	}
	if strings.Contains(section, "2024-01-02") {
		t.Errorf("section includes the next day:\n%s", section)
	}
}

func TestStore_ReadDay_LastSectionRunsToEOF(t *testing.T) {
	store := seedMonth(t)

	section, err := store.ReadDay(jan(2))
	if err != nil {
		t.Fatalf("ReadDay() error = %v", err)
	}
	if !strings.HasPrefix(section, "## 2024-01-02") {
		t.Errorf("section should start with the day header:\n%s", section)
	}
	if !strings.Contains(section, "* work") {
		t.Errorf("section missing item text:\n%s", section)
	}
}

func TestStore_ReadDay_NotFound(t *testing.T) {
	store := seedMonth(t)

	_, err := store.ReadDay(jan(3))
	if err == nil {
		t.Fatal("ReadDay() expected error")
	}
	if err.Error() != "no entry found for 2024-01-03" {
		t.Errorf("error = %q", err.Error())
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}

func TestStore_ReadDay_MissingMonthFile(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.ReadDay(jan(1))
	if err == nil {
		t.Fatal("ReadDay() expected error")
	}
	if err.Error() != "no logs found for specified period" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestFindDaySection(t *testing.T) {
	content := "# Work Log - January 2024\n" +
		"\n## 2024-01-01\n\n### Projects\n* one\n\n" +
		"\n## 2024-01-02\n\n### Projects\n* two\n\n"

	tests := []struct {
		name   string
		target string
		wantOK bool
		want   []string
		wantNo []string
	}{
		{
			name:   "first section ends before next header",
			target: "2024-01-01",
			wantOK: true,
			want:   []string{"## 2024-01-01", "* one"},
			wantNo: []string{"2024-01-02", "* two"},
		},
		{
			name:   "last section runs to end of content",
			target: "2024-01-02",
			wantOK: true,
			want:   []string{"## 2024-01-02", "* two"},
			wantNo: []string{"* one"},
		},
		{
			name:   "absent date",
			target: "2024-01-09",
			wantOK: false,
		},
		{
			// A body line containing the date must not match; only a "## "
			// header anchors a section.
			name:   "date in body text does not match",
			target: "2024-01-0",
			wantOK: true,
			want:   []string{"## 2024-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, ok := findDaySection(content, tt.target)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			for _, want := range tt.want {
				if !strings.Contains(section, want) {
					t.Errorf("section missing %q:\n%s", want, section)
				}
			}
			for _, unwanted := range tt.wantNo {
				if strings.Contains(section, unwanted) {
					t.Errorf("section contains %q:\n%s", unwanted, section)
				}
			}
		})
	}
}

func TestStore_DayHeaders(t *testing.T) {
	store := seedMonth(t)

	headers, err := store.DayHeaders(jan(1))
	if err != nil {
		t.Fatalf("DayHeaders() error = %v", err)
	}
	want := []string{"2024-01-01", "2024-01-02"}
	if !reflect.DeepEqual(headers, want) {
		t.Errorf("headers = %v, want %v", headers, want)
	}
}

func TestStore_DayHeaders_MissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	headers, err := store.DayHeaders(jan(1))
	if err != nil {
		t.Fatalf("DayHeaders() error = %v", err)
	}
	if headers != nil {
		t.Errorf("headers = %v, want nil for a missing file", headers)
	}
}
