package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// SessionState is the persisted identity of a logged-in user.
type SessionState struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       uuid.UUID `json:"user_id"`
	Role         string    `json:"role"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
}

// Storage persists session state between client instances.
type Storage interface {
	Load() (*SessionState, error)
	Save(state *SessionState) error
	Clear() error
}

// FileStorage keeps the session in a JSON file, restored at construction the
// way a browser client restores from local storage.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load() (*SessionState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *FileStorage) Save(state *SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStorage) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStorage is an in-process Storage for tests and short-lived tools.
type MemoryStorage struct {
	mu    sync.Mutex
	state *SessionState
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() (*SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, nil
	}
	copied := *s.state
	return &copied, nil
}

func (s *MemoryStorage) Save(state *SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *state
	s.state = &copied
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = nil
	return nil
}

// Session holds the live session state and writes through to Storage.
type Session struct {
	mu      sync.RWMutex
	state   *SessionState
	storage Storage
}

// NewSession restores previously persisted state. A storage read failure
// yields an empty session rather than an error: a stale session file should
// never keep the client from starting.
func NewSession(storage Storage) *Session {
	s := &Session{storage: storage}
	if storage != nil {
		if state, err := storage.Load(); err == nil && state != nil {
			s.state = state
		}
	}
	return s
}

func (s *Session) Set(state *SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	if s.storage != nil && state != nil {
		s.storage.Save(state)
	}
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = nil
	if s.storage != nil {
		s.storage.Clear()
	}
}

// AccessToken returns the bearer token, or "" when logged out.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return ""
	}
	return s.state.AccessToken
}

// RefreshToken returns the refresh token, or "" when logged out.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return ""
	}
	return s.state.RefreshToken
}

// Role returns the logged-in user's role name, or "" when logged out.
func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return ""
	}
	return s.state.Role
}

// Authenticated reports whether a session is active.
func (s *Session) Authenticated() bool {
	return s.AccessToken() != ""
}

// State returns a copy of the current state, or nil when logged out.
func (s *Session) State() *SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil
	}
	copied := *s.state
	return &copied
}
