// Shared helpers for camino CLI commands.
package main

import (
	"errors"
	"fmt"

	"github.com/trailforge/camino/internal/logger"
	"github.com/trailforge/camino/internal/sqlite"
	"github.com/trailforge/camino/pkg/types"
)

// attachBackend resolves the data directory, builds the logger, and
// attaches a backend. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	log, err := logger.New(resolveLogLevel())
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	backend := sqlite.NewBackend(log)
	cfg := types.Config{
		DataDir:  dataDir,
		LogLevel: resolveLogLevel(),
	}
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// resolveTrail returns the trail the command targets: the --trail flag if
// given, otherwise the current trail stored in the database.
func resolveTrail(backend *sqlite.Backend) (string, error) {
	if flagTrail != "" {
		return flagTrail, nil
	}
	trail, err := backend.CurrentTrail()
	if errors.Is(err, types.ErrNotFound) {
		return "", errors.New("no current trail set; pass --trail or run 'camino trail use <name>'")
	}
	if err != nil {
		return "", err
	}
	return trail, nil
}

// enabledMark renders the enabled flag for list output.
func enabledMark(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
