package journal

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/jotwood/worklog/internal/output"
)

// headerPrefix marks the start of a day-section within a month file.
const headerPrefix = "## "

// ReadMonth returns the full contents of the month file containing the
// given date. Returns a user error when no file exists for that month.
func (s *Store) ReadMonth(month time.Time) (string, error) {
	path := s.FilePath(month)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", output.NewUserError("no logs found for specified period")
		}
		return "", output.NewSystemErrorWithCause("failed to read log file: "+path, err)
	}
	return string(data), nil
}

// ReadDay returns the day-section for the given date from its month file,
// header line included. Returns a user error when the month file or the
// day-section is missing.
func (s *Store) ReadDay(date time.Time) (string, error) {
	content, err := s.ReadMonth(date)
	if err != nil {
		return "", err
	}

	target := date.Format("2006-01-02")
	section, ok := findDaySection(content, target)
	if !ok {
		return "", output.NewUserError("no entry found for " + target)
	}
	return section, nil
}

// DayHeaders returns the text after "## " of every day header in the month
// file containing the given date, in file order. A missing file yields nil
// with no error.
func (s *Store) DayHeaders(month time.Time) ([]string, error) {
	data, err := os.ReadFile(s.FilePath(month))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read log file: "+s.FilePath(month), err)
	}

	var headers []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, headerPrefix) {
			headers = append(headers, strings.TrimPrefix(line, headerPrefix))
		}
	}
	return headers, nil
}

// findDaySection scans content line by line: any line beginning with "## "
// starts a new section. It returns the first section whose header text
// begins with target, spanning from the header line up to (not including)
// the next header. The match is anchored to the header, so body lines that
// merely contain a date never match.
func findDaySection(content, target string) (string, bool) {
	lines := strings.Split(content, "\n")
	start := -1
	for i, line := range lines {
		if !strings.HasPrefix(line, headerPrefix) {
			continue
		}
		if start >= 0 {
			return strings.Join(lines[start:i], "\n"), true
		}
		if strings.HasPrefix(strings.TrimPrefix(line, headerPrefix), target) {
			start = i
		}
	}
	if start >= 0 {
		return strings.Join(lines[start:], "\n"), true
	}
	return "", false
}
