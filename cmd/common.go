package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/DBst-23/DBst-23/internal/catalog"
	"github.com/DBst-23/DBst-23/internal/config"
)

// setupLogger creates a logger configured for progress output
func setupLogger(cfg *config.Config) *slog.Logger {
	if cfg.Quiet {
		// Discard all log output when quiet
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.LevelError + 1, // Higher than any log level to discard all
		}))
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	// Use stderr for progress so stdout stays clean for output
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time stamps for cleaner progress output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// bootstrap loads configuration, the logger, and the command catalog
// (built-ins plus the optional vocabulary file). Every subcommand starts
// here.
func bootstrap() (*config.Config, *catalog.Catalog, *slog.Logger, error) {
	cfg, err := config.FromEnvAndFlags(flagVerbose, flagQuiet)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := setupLogger(cfg)

	cat, err := catalog.Load(cfg.VocabPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if cat.Len() > catalog.Builtin().Len() {
		logger.Debug("vocabulary file extended the catalog",
			"path", cfg.VocabPath,
			"commands", cat.Len())
	}

	return cfg, cat, logger, nil
}
