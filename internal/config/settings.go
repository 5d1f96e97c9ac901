package config

import (
	"fmt"
	"os"

	envparse "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds the env-driven runtime configuration. Every field is
// sourced from a PACKSTORE_* environment variable, optionally seeded from a
// .env file in the working directory.
type Settings struct {
	// Root overrides the data root directory from PACKSTORE_ROOT.
	Root string `env:"PACKSTORE_ROOT"`

	// Store overrides the default target store from PACKSTORE_STORE.
	Store string `env:"PACKSTORE_STORE"`

	// LogLevel is the logging level from PACKSTORE_LOG_LEVEL.
	LogLevel string `env:"PACKSTORE_LOG_LEVEL" envDefault:"info"`

	// NoColor disables colored output via PACKSTORE_NO_COLOR.
	NoColor bool `env:"PACKSTORE_NO_COLOR"`
}

// LoadSettings reads Settings from the environment. Existing .env files are
// loaded first without overriding variables already set in the process
// environment; missing files are ignored.
func LoadSettings(envFiles ...string) (*Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	var s Settings
	if err := envparse.Parse(&s); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &s, nil
}

// Paths resolves the path set for this configuration, honoring the Root
// override.
func (s *Settings) Paths() (*Paths, error) {
	if s.Root != "" {
		return PathsFor(s.Root), nil
	}
	return DefaultPaths()
}

// StoreDir resolves the target store directory, honoring the Store override.
func (s *Settings) StoreDir(paths *Paths) string {
	if s.Store != "" {
		return s.Store
	}
	return paths.Store
}
