// Package config loads and writes the worklog YAML configuration.
//
// The configuration lives in worklog_config.yaml at the repository root.
// A missing file falls back to the built-in defaults; a present file only
// overrides the keys it names.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jotwood/worklog/internal/output"
)

// FileName is the configuration file kept at the repository root.
const FileName = "worklog_config.yaml"

// Config holds the worklog settings.
type Config struct {
	// Categories is the ordered list of prompt categories. Order determines
	// display order in rendered entries.
	Categories []string `yaml:"categories"`
	// BackupDir is reserved for a log backup location. It is parsed and
	// written but no command consumes it yet.
	BackupDir string `yaml:"backup_dir"`
	// GitAutoCommit commits the month file after each log entry unless
	// overridden by --git/--no-git.
	GitAutoCommit bool `yaml:"git_auto_commit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Categories: []string{
			"Projects",
			"Code Changes",
			"Code Reviews",
			"Design Documents",
			"Meetings & Discussions",
			"Helping Others",
			"Other Tasks",
		},
		BackupDir:     "~/.worklog_backup",
		GitAutoCommit: false,
	}
}

// Path returns the configuration file path under the given root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Exists reports whether a configuration file is present under root.
func Exists(root string) bool {
	_, err := os.Stat(Path(root))
	return err == nil
}

// Load reads the configuration under root. A missing file yields the
// defaults; keys absent from the file keep their default values. Malformed
// YAML is a fatal system error.
func Load(root string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(root))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read "+FileName, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse "+FileName, err)
	}
	return cfg, nil
}

// Write serializes the configuration to the file under root, replacing any
// existing file.
func (c *Config) Write(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to encode configuration", err)
	}
	if err := os.WriteFile(Path(root), data, 0o600); err != nil {
		return output.NewSystemErrorWithCause("failed to write "+FileName, err)
	}
	return nil
}
