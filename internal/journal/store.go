package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jotwood/worklog/internal/git"
	"github.com/jotwood/worklog/internal/output"
)

// DirName is the log directory kept at the repository root.
const DirName = "work_logs"

// GitAddFunc stages a file at the given path.
type GitAddFunc func(path string) error

// DefaultGitAdd stages a file using git add.
func DefaultGitAdd(path string) error {
	_, err := git.Run("add", path)
	return err
}

// GitCommitFunc commits a file at the given path with the given message.
type GitCommitFunc func(path string, message string) error

// DefaultGitCommit commits a specific file using git commit with pathspec.
// The -- before the path ensures only the log file is committed, not other
// staged files.
func DefaultGitCommit(path string, message string) error {
	_, err := git.Run("commit", "-m", message, "--", path)
	return err
}

// Store appends rendered entries to per-month markdown files named
// YYYY_MM.md under dir. Appends take no lock: two simultaneous runs may
// interleave bytes in a month file. Accepted limitation for a single-user
// local tool.
type Store struct {
	dir       string
	gitAdd    GitAddFunc
	gitCommit GitCommitFunc
	now       func() time.Time
}

// NewStore creates a Store for the given directory.
// If gitAdd is nil, uses DefaultGitAdd.
// If gitCommit is nil, uses DefaultGitCommit.
func NewStore(dir string, gitAdd GitAddFunc, gitCommit GitCommitFunc) *Store {
	if gitAdd == nil {
		gitAdd = DefaultGitAdd
	}
	if gitCommit == nil {
		gitCommit = DefaultGitCommit
	}
	return &Store{dir: dir, gitAdd: gitAdd, gitCommit: gitCommit, now: time.Now}
}

// Dir returns the store directory path.
func (s *Store) Dir() string {
	return s.dir
}

// FilePath returns the month file path for the given date.
func (s *Store) FilePath(date time.Time) string {
	return filepath.Join(s.dir, date.Format("2006_01")+".md")
}

// Append renders the entry and appends it to the file for the entry's
// month, creating the file with a title line when absent. The title names
// the current month and year at creation time, not the entry's date, so a
// backfilled entry lands in its own month file but the title still reflects
// when the file was created. Existing content is never rewritten; a second
// entry for the same date appends a second day header rather than merging.
// Returns the resolved file path.
func (s *Store) Append(entry *Entry) (string, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", output.NewSystemErrorWithCause("failed to create log directory: "+s.dir, err)
	}

	path := s.FilePath(entry.Date)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		title := fmt.Sprintf("# Work Log - %s\n", s.now().Format("January 2006"))
		if err := os.WriteFile(path, []byte(title), 0o600); err != nil {
			return "", output.NewSystemErrorWithCause("failed to create log file: "+path, err)
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to open log file: "+path, err)
	}
	defer file.Close() //nolint:errcheck // close error surfaces through the write below

	if _, err := file.WriteString(Render(entry)); err != nil {
		return "", output.NewSystemErrorWithCause("failed to append to log file: "+path, err)
	}

	return path, nil
}

// Commit stages the month file and commits it. The commit message carries
// today's date, not the entry's date.
func (s *Store) Commit(path string) error {
	if err := s.gitAdd(path); err != nil {
		return output.NewSystemErrorWithCause("failed to stage "+path, err)
	}
	message := "Update work log for " + s.now().Format("2006-01-02")
	if err := s.gitCommit(path, message); err != nil {
		return output.NewSystemErrorWithCause("failed to commit "+path, err)
	}
	return nil
}
