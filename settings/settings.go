// Package settings holds tailpad's process-wide configuration and its
// on-disk store.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEmptyLines = 5
	MinEmptyLines     = 0
	MaxEmptyLines     = 20
)

// Settings is the tailpad configuration. It is loaded once at startup and
// persisted on every mutation.
type Settings struct {
	// EmptyLines is the trailing blank line count maintained in the active
	// editor buffer.
	EmptyLines int `yaml:"empty_lines"`

	// ExcludeRegex is tested against a document's path and content; a match
	// excludes the document from all processing. Empty excludes nothing.
	ExcludeRegex string `yaml:"exclude_regex"`
}

func Default() Settings {
	return Settings{EmptyLines: DefaultEmptyLines}
}

// Clamped returns s with EmptyLines forced into [MinEmptyLines, MaxEmptyLines].
func (s Settings) Clamped() Settings {
	if s.EmptyLines < MinEmptyLines {
		s.EmptyLines = MinEmptyLines
	}
	if s.EmptyLines > MaxEmptyLines {
		s.EmptyLines = MaxEmptyLines
	}
	return s
}

// Store loads and saves settings at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (st *Store) Path() string { return st.path }

// DefaultPath returns the per-user settings location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tailpad", "config.yaml"), nil
}

// fileSettings mirrors Settings with pointer fields, so absent keys can be
// told apart from zero values and defaulted individually.
type fileSettings struct {
	EmptyLines   *int    `yaml:"empty_lines"`
	ExcludeRegex *string `yaml:"exclude_regex"`
}

// Load reads the settings file and merges it over defaults key by key. A
// missing file yields defaults. A malformed file also yields defaults, with
// the parse error returned so callers can report it; loading is never fatal.
func (st *Store) Load() (Settings, error) {
	cfg := Default()

	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read settings: %w", err)
	}

	var f fileSettings
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("parse settings: %w", err)
	}

	if f.EmptyLines != nil {
		cfg.EmptyLines = *f.EmptyLines
	}
	if f.ExcludeRegex != nil {
		cfg.ExcludeRegex = *f.ExcludeRegex
	}
	return cfg.Clamped(), nil
}

// Save persists s, creating the parent directory as needed.
func (st *Store) Save(s Settings) error {
	data, err := yaml.Marshal(s.Clamped())
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
