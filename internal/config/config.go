package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults for the bridge repository this console fronts.
const (
	DefaultRepository = "DBst-23/DBst-23"
	DefaultVocabFile  = "charlotte.yaml"
)

// Config holds all configuration for the console.
type Config struct {
	Repository string // owner/name slug shown in headers and guidance
	DataRoot   string // base directory the workflow's data folders live under
	VocabPath  string // optional command vocabulary file
	Verbose    bool
	Quiet      bool
}

// FromEnvAndFlags creates a Config from environment variables and CLI flags.
// Every setting has a default; nothing is required.
func FromEnvAndFlags(verbose bool, quiet bool) (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load() // Silently ignore if .env file doesn't exist

	config := &Config{
		Repository: strings.TrimSpace(os.Getenv("CHARLOTTE_REPOSITORY")),
		DataRoot:   strings.TrimSpace(os.Getenv("CHARLOTTE_DATA_ROOT")),
		VocabPath:  strings.TrimSpace(os.Getenv("CHARLOTTE_COMMANDS")),
		Verbose:    verbose && !quiet, // verbose is disabled if quiet is set
		Quiet:      quiet,
	}

	if config.Repository == "" {
		config.Repository = DefaultRepository
	}
	if err := validateRepository(config.Repository); err != nil {
		return nil, err
	}

	if config.DataRoot == "" {
		config.DataRoot = "."
	}
	if config.VocabPath == "" {
		config.VocabPath = filepath.Join(config.DataRoot, DefaultVocabFile)
	}

	return config, nil
}

// validateRepository checks the owner/name shape without touching the
// network; the slug is display text, never an API target.
func validateRepository(slug string) error {
	owner, name, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("CHARLOTTE_REPOSITORY must look like owner/name, got %q", slug)
	}
	return nil
}
