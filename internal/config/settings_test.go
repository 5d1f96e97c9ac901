package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsFromEnvironment(t *testing.T) {
	t.Setenv("PACKSTORE_ROOT", "/data/packstore")
	t.Setenv("PACKSTORE_STORE", "/srv/content")
	t.Setenv("PACKSTORE_LOG_LEVEL", "debug")
	t.Setenv("PACKSTORE_NO_COLOR", "true")

	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if s.Root != "/data/packstore" {
		t.Errorf("Root = %q", s.Root)
	}
	if s.Store != "/srv/content" {
		t.Errorf("Store = %q", s.Store)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
	if !s.NoColor {
		t.Error("NoColor = false")
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	for _, key := range []string{"PACKSTORE_ROOT", "PACKSTORE_STORE", "PACKSTORE_LOG_LEVEL", "PACKSTORE_NO_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.LogLevel != "info" {
		t.Errorf("default LogLevel = %q, want info", s.LogLevel)
	}
	if s.Root != "" || s.Store != "" || s.NoColor {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestLoadSettingsFromEnvFile(t *testing.T) {
	for _, key := range []string{"PACKSTORE_ROOT", "PACKSTORE_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	data := "PACKSTORE_ROOT=/from/env/file\nPACKSTORE_LOG_LEVEL=warn\n"
	if err := os.WriteFile(envFile, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	s, err := LoadSettings(envFile)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.Root != "/from/env/file" {
		t.Errorf("Root = %q", s.Root)
	}
	if s.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
}

func TestEnvFileDoesNotOverrideProcessEnvironment(t *testing.T) {
	t.Setenv("PACKSTORE_ROOT", "/from/process")

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("PACKSTORE_ROOT=/from/env/file\n"), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	s, err := LoadSettings(envFile)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.Root != "/from/process" {
		t.Errorf("Root = %q, process environment should win", s.Root)
	}
}

func TestSettingsPaths(t *testing.T) {
	s := &Settings{Root: "/data/packstore"}
	paths, err := s.Paths()
	if err != nil {
		t.Fatalf("Paths failed: %v", err)
	}
	if paths.Root != "/data/packstore" {
		t.Errorf("Root = %q", paths.Root)
	}

	if got := s.StoreDir(paths); got != paths.Store {
		t.Errorf("StoreDir = %q, want default %q", got, paths.Store)
	}
	s.Store = "/srv/content"
	if got := s.StoreDir(paths); got != "/srv/content" {
		t.Errorf("StoreDir = %q, want override", got)
	}
}
