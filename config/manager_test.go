package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "settings.json"))

	settings, err := m.Load()
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if settings.Server.Port != 8080 {
		t.Fatalf("expected default port, got %d", settings.Server.Port)
	}
	if settings.Sync.IntervalMinutes != 5 {
		t.Fatalf("expected default sync interval, got %d", settings.Sync.IntervalMinutes)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	m := NewManager(path)

	settings := DefaultSettings()
	settings.Server.Port = 9090
	settings.Remote.URL = "https://example.supabase.co"
	settings.Remote.AnonKey = "anon"
	if err := m.Save(settings); err != nil {
		t.Fatalf("save returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file created: %v", err)
	}

	loaded, err := m.Load()
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if loaded.Server.Port != 9090 || loaded.Remote.URL != "https://example.supabase.co" {
		t.Fatalf("unexpected loaded settings: %+v", loaded)
	}
}

func TestEnvironmentOverridesRemote(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://env.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "env-key")

	m := NewManager(filepath.Join(t.TempDir(), "settings.json"))
	settings, err := m.Load()
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if settings.Remote.URL != "https://env.supabase.co" || settings.Remote.AnonKey != "env-key" {
		t.Fatalf("expected environment overrides applied, got %+v", settings.Remote)
	}
}
