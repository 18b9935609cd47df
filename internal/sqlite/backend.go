// Package sqlite implements the SQLite storage backend for the camino
// trail data store: schema provisioning per trail, waypoint sequencing
// and pace cascading, reference and journal tables, and bulk CSV
// waypoint ingestion.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/trailforge/camino/pkg/types"
)

// dbFileName is the database file created inside Config.DataDir.
const dbFileName = "camino.db"

// Backend owns the single long-lived database handle. It performs no
// internal locking beyond SQLite's own transaction isolation; a
// multi-threaded host must serialize mutating calls externally.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      *zap.Logger
}

// NewBackend creates a detached backend. A nil logger disables logging.
// Call Attach with a Config to initialize.
func NewBackend(log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{log: log}
}

// Attach opens (or creates) the database file under config.DataDir,
// applies the durability pragmas, and provisions the global tables.
// Returns ErrAlreadyAttached if called while attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	// Crash safety and referential enforcement for the life of the handle.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("applying %s: %w", pragma, err)
		}
	}

	if err := createGlobalTables(db); err != nil {
		db.Close()
		return fmt.Errorf("provisioning global schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	b.log.Info("store attached", zap.String("path", dbPath))
	return nil
}

// Detach closes the database handle. After Detach, all operations return
// ErrStoreClosed. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}

	b.attached = false
	b.log.Info("store detached")
	return nil
}

// conn returns the live database handle, or ErrStoreClosed when detached.
func (b *Backend) conn() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreClosed
	}
	return b.db, nil
}

// currentTrailKey is the app_config key naming the active trail.
const currentTrailKey = "current_trail"

// CurrentTrail returns the trail name stored in app_config.
// Returns ErrNotFound if no trail has been selected yet.
func (b *Backend) CurrentTrail() (string, error) {
	db, err := b.conn()
	if err != nil {
		return "", err
	}

	var trail string
	err = db.QueryRow(
		"SELECT value FROM app_config WHERE key = ?", currentTrailKey,
	).Scan(&trail)
	if err == sql.ErrNoRows {
		return "", types.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading current trail: %w", err)
	}
	return trail, nil
}

// SetCurrentTrail records trail as the active trail, updating the existing
// app_config row or inserting it on first use.
func (b *Backend) SetCurrentTrail(trail string) error {
	if err := types.ValidateTrailName(trail); err != nil {
		return err
	}
	db, err := b.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec(
		"UPDATE app_config SET value = ? WHERE key = ?", trail, currentTrailKey,
	)
	if err != nil {
		return fmt.Errorf("updating current trail: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating current trail: %w", err)
	}
	if n == 0 {
		if _, err := db.Exec(
			"INSERT INTO app_config (key, value) VALUES (?, ?)", currentTrailKey, trail,
		); err != nil {
			return fmt.Errorf("inserting current trail: %w", err)
		}
	}
	return nil
}

// generateUUID generates a new UUID v7 for import run IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
