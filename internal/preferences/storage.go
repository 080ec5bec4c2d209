package preferences

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const (
	// preferencesFileName is the name of the preferences file.
	preferencesFileName = "preferences.yaml"
	// userConfigDir is the subdirectory under home for rbw configuration.
	userConfigDir = ".config/rbw"
)

// DefaultConfigPath returns ~/.config/rbw.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// Storage provides access to the preferences file.
type Storage struct {
	mu         sync.RWMutex
	configPath string
}

// NewStorage creates a Storage rooted at the default config path.
func NewStorage() (*Storage, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return NewStorageWithPath(configPath), nil
}

// NewStorageWithPath creates a Storage rooted at a custom config path.
// This is useful for testing or when using a non-default configuration directory.
func NewStorageWithPath(configPath string) *Storage {
	return &Storage{
		configPath: configPath,
	}
}

// Path returns the full path to the preferences file.
func (s *Storage) Path() string {
	return filepath.Join(s.configPath, preferencesFileName)
}

// Load reads the preferences file and applies RBW_* environment overrides.
// A missing file yields an empty session.
func (s *Storage) Load() (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadLocked(true)
}

func (s *Storage) loadLocked(withEnv bool) (*Session, error) {
	k := koanf.New(".")

	filePath := s.Path()
	if _, err := os.Stat(filePath); err == nil {
		if err := k.Load(file.Provider(filePath), koanfyaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse preferences file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	if withEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", s.envKey), nil); err != nil {
			return nil, fmt.Errorf("failed to load environment overrides: %w", err)
		}
	}

	var session Session
	if err := k.Unmarshal("", &session); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return &session, nil
}

// envKey maps RBW_APPSECRET to appsecret. Variables that do not name a
// preference are dropped.
func (s *Storage) envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	switch key {
	case "email", "password", "host", "proxy", "appid", "appsecret":
		return key
	default:
		return ""
	}
}

// Save writes the session to the preferences file, replacing it atomically.
func (s *Storage) Save(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(session)
}

func (s *Storage) saveLocked(session *Session) error {
	if err := os.MkdirAll(s.configPath, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmp, err := os.CreateTemp(s.configPath, preferencesFileName+".*")
	if err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	return nil
}

// Update applies fn to the stored preferences (without environment
// overrides) and saves the result.
func (s *Storage) Update(fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadLocked(false)
	if err != nil {
		return err
	}
	if err := fn(session); err != nil {
		return err
	}
	return s.saveLocked(session)
}

// RecordSession stores a freshly established token and user.
func (s *Storage) RecordSession(token string, user User) error {
	return s.Update(func(session *Session) error {
		session.Token = token
		session.User = user
		return nil
	})
}

// Remove deletes the preferences file. Removing a missing file is not an error.
func (s *Storage) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove preferences file: %w", err)
	}
	return nil
}
