package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Manager loads and saves the settings file. A missing file reads as
// defaults; the first Save creates it.
type Manager struct {
	path string
	mu   sync.RWMutex
}

// NewManager returns a manager for the settings file at path.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Load reads the settings file, applying environment overrides for the
// remote backend values.
func (m *Manager) Load() (Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	settings := DefaultSettings()
	data, err := os.ReadFile(m.path)
	switch {
	case os.IsNotExist(err):
		// fresh install, run with defaults
	case err != nil:
		return settings, fmt.Errorf("read settings: %w", err)
	default:
		if err := json.Unmarshal(data, &settings); err != nil {
			return settings, fmt.Errorf("parse settings: %w", err)
		}
	}

	if v := os.Getenv("SUPABASE_URL"); v != "" {
		settings.Remote.URL = v
	}
	if v := os.Getenv("SUPABASE_ANON_KEY"); v != "" {
		settings.Remote.AnonKey = v
	}

	return settings, nil
}

// Save writes the settings file, creating its directory when needed.
func (m *Manager) Save(settings Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir := filepath.Dir(m.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
