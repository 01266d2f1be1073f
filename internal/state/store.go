// Package state persists the small amount of mutable bookkeeping the
// amend policy and the commit wizard need between runs: how many amends
// happened today and which project name was used last. It lives under
// the repository's .git directory so it never pollutes the worktree.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	stateDirName  = "vercom"
	stateFileName = "state.json"

	// dayFormat keys amend counts to a calendar day in local time.
	dayFormat = "2006-01-02"
)

// Data is the persisted state document.
type Data struct {
	Day         string    `json:"day"`
	AmendCount  int       `json:"amendCount"`
	LastAmendAt time.Time `json:"lastAmendAt,omitzero"`
	LastProject string    `json:"lastProject,omitempty"`
}

// Store reads and writes the state file. A missing file behaves like
// zero state; corrupt state is discarded rather than blocking commits.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a store rooted under the repository's .git directory.
func NewStore(gitDir string) *Store {
	return &Store{
		path:   filepath.Join(gitDir, stateDirName, stateFileName),
		logger: slog.Default().With("module", "state"),
	}
}

// Path returns the location of the state file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the current state. Missing or unreadable state comes back
// as the zero Data value.
func (s *Store) Load() Data {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("state unreadable, starting fresh", "path", s.path, "error", err)
		}
		return Data{}
	}

	var data Data
	if err := json.Unmarshal(content, &data); err != nil {
		s.logger.Warn("state corrupt, starting fresh", "path", s.path, "error", err)
		return Data{}
	}
	return data
}

// AmendCountFor returns how many amends were recorded on now's calendar
// day. Counts from earlier days do not carry over.
func (s *Store) AmendCountFor(now time.Time) int {
	data := s.Load()
	if data.Day != now.Format(dayFormat) {
		return 0
	}
	return data.AmendCount
}

// LastProject returns the most recently committed project name, if any.
func (s *Store) LastProject() string {
	return s.Load().LastProject
}

// RecordAmend increments the amend count for now's day and saves.
func (s *Store) RecordAmend(now time.Time, project string) error {
	data := s.Load()
	day := now.Format(dayFormat)
	if data.Day != day {
		data.Day = day
		data.AmendCount = 0
	}
	data.AmendCount++
	data.LastAmendAt = now
	if project != "" {
		data.LastProject = project
	}
	return s.save(data)
}

// RecordCommit remembers the project name used for the latest commit.
func (s *Store) RecordCommit(project string) error {
	data := s.Load()
	data.LastProject = project
	return s.save(data)
}

func (s *Store) save(data Data) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(s.path, append(content, '\n'), 0o644); err != nil {
		return fmt.Errorf("write state %s: %w", s.path, err)
	}

	s.logger.Debug("state saved", "path", s.path, "day", data.Day, "amends", data.AmendCount)
	return nil
}
