// Package session holds the team identity between runs. The token's
// claims are the source of truth; the stored copies are a cache.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store reads and writes the persisted team session. There are exactly
// two writer paths: signup success calls Set, and 401/invalid-token
// teardown calls Clear. Both replace all three fields together.
type Store interface {
	TeamID() string
	TeamName() string
	Token() string
	Set(teamID, teamName, token string) error
	Clear() error
}

type record struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	Token    string `json:"token"`
}

// FileStore persists the session as a JSON file, the CLI analog of the
// browser's local storage.
type FileStore struct {
	mu   sync.Mutex
	path string
	rec  record
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}
	if err := json.Unmarshal(data, &s.rec); err != nil {
		// A corrupt session file is treated as absent.
		s.rec = record{}
	}
	return nil
}

func (s *FileStore) TeamID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.TeamID
}

func (s *FileStore) TeamName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.TeamName
}

func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Token
}

// Set replaces the whole record atomically (temp file + rename).
func (s *FileStore) Set(teamID, teamName, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := record{TeamID: teamID, TeamName: teamName, Token: token}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	s.rec = rec
	return nil
}

// Clear drops all three fields together.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rec = record{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// MemStore is an in-process Store for tests and embedded use.
type MemStore struct {
	mu  sync.Mutex
	rec record
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) TeamID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.TeamID
}

func (s *MemStore) TeamName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.TeamName
}

func (s *MemStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Token
}

func (s *MemStore) Set(teamID, teamName, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = record{TeamID: teamID, TeamName: teamName, Token: token}
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = record{}
	return nil
}
