// Schema DDL for the global tables and the per-trail table family.
// Trail names are interpolated into table names only after
// types.ValidateTrailName has accepted them.
package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/trailforge/camino/pkg/types"
)

// Global tables, created once at Attach.
const (
	createAppConfig = `CREATE TABLE IF NOT EXISTS app_config (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	createCategory = `CREATE TABLE IF NOT EXISTS camino_category (
    id_no INTEGER PRIMARY KEY AUTOINCREMENT,
    category TEXT NOT NULL,
    category_type TEXT,
    enabled INTEGER NOT NULL DEFAULT 1
);`

	createCurrency = `CREATE TABLE IF NOT EXISTS camino_currency (
    id_no INTEGER PRIMARY KEY AUTOINCREMENT,
    currency TEXT NOT NULL,
    exchange_rate REAL NOT NULL DEFAULT 1.0,
    enabled INTEGER NOT NULL DEFAULT 1
);`

	createPayment = `CREATE TABLE IF NOT EXISTS camino_payment (
    id_no INTEGER PRIMARY KEY AUTOINCREMENT,
    payment_type TEXT NOT NULL,
    payment TEXT NOT NULL,
    enabled INTEGER NOT NULL DEFAULT 1
);`

	createImportLog = `CREATE TABLE IF NOT EXISTS import_log (
    import_id TEXT PRIMARY KEY,
    trail TEXT NOT NULL,
    imported INTEGER NOT NULL,
    skipped INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`
)

// Per-trail table templates. The single %s is the validated trail name.
const (
	createWaypointsTmpl = `CREATE TABLE IF NOT EXISTS %s_waypoints (
    id_no INTEGER PRIMARY KEY AUTOINCREMENT,
    seq INTEGER NOT NULL,
    latitude REAL NOT NULL,
    longitude REAL NOT NULL,
    elevation REAL NOT NULL,
    distance REAL NOT NULL,
    hike_city TEXT,
    gain REAL NOT NULL,
    loss REAL NOT NULL,
    pace_dist INTEGER NOT NULL,
    pace_gain INTEGER NOT NULL,
    fme TEXT NOT NULL,
    facilities TEXT,
    variant_city TEXT
);`

	createTripTmpl = `CREATE TABLE IF NOT EXISTS %s_trip (
    id_no INTEGER PRIMARY KEY AUTOINCREMENT,
    trip_start_date TEXT NOT NULL,
    trip_return_date TEXT NOT NULL,
    trip_distance REAL NOT NULL,
    trip_gain REAL NOT NULL,
    trip_loss REAL NOT NULL,
    trip_slope REAL NOT NULL,
    trip_days INTEGER NOT NULL,
    select_trail TEXT NOT NULL,
    trip_title TEXT NOT NULL,
    distance_uom TEXT NOT NULL DEFAULT 'Km',
    temp_uom TEXT NOT NULL DEFAULT 'C',
    weight_uom TEXT NOT NULL DEFAULT 'Kg',
    planning_range REAL DEFAULT 50.0
);`

	createZerosTmpl = `CREATE TABLE IF NOT EXISTS %s_zeros (
    id_no INTEGER PRIMARY KEY AUTOINCREMENT,
    zero_city TEXT NOT NULL
);`

	createAttractionsTmpl = `CREATE TABLE IF NOT EXISTS %s_attractions (
    id_no INTEGER PRIMARY KEY AUTOINCREMENT,
    attraction_city TEXT NOT NULL,
    attraction TEXT NOT NULL,
    attraction_map TEXT
);`

	createPlanTmpl = `CREATE TABLE IF NOT EXISTS %s_plan (
    id_no INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    stop_city TEXT NOT NULL,
    plan_distance REAL NOT NULL,
    plan_gain REAL NOT NULL,
    plan_loss REAL NOT NULL,
    plan_slope REAL NOT NULL,
    plan_duration TEXT NOT NULL,
    stop_type TEXT NOT NULL
);`

	createMileageTmpl = `CREATE TABLE IF NOT EXISTS %s_mileage (
    id_no INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    stop_city TEXT NOT NULL,
    stop_type TEXT NOT NULL,
    start_time TEXT,
    stop_time TEXT,
    actual_distance REAL,
    actual_gain REAL,
    actual_loss REAL,
    actual_slope REAL,
    actual_duration TEXT,
    actual_moving TEXT,
    actual_pace TEXT,
    zero_distance REAL,
    high_temp TEXT,
    pilgrims INTEGER,
    note_mileage TEXT
);`

	createExpenseTmpl = `CREATE TABLE IF NOT EXISTS %s_expense (
    id_no INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    stop_city TEXT NOT NULL,
    stop_type TEXT NOT NULL,
    payment TEXT NOT NULL,
    payment_type TEXT NOT NULL,
    expense_category TEXT NOT NULL,
    expense_type TEXT NOT NULL,
    vendor TEXT,
    local_amount REAL NOT NULL,
    currency TEXT NOT NULL,
    usd_amount REAL NOT NULL,
    note_expense TEXT
);`
)

// Per-trail index templates: seq for route-order scans, city for anchor
// lookups. Both %s are the validated trail name.
const (
	idxWaypointsSeqTmpl  = `CREATE INDEX IF NOT EXISTS idx_%s_waypoints_seq ON %s_waypoints(seq);`
	idxWaypointsCityTmpl = `CREATE INDEX IF NOT EXISTS idx_%s_waypoints_city ON %s_waypoints(hike_city);`
)

// globalDDL lists the CREATE TABLE statements applied once at Attach.
var globalDDL = []string{
	createAppConfig,
	createCategory,
	createCurrency,
	createPayment,
	createImportLog,
}

// trailDDL lists the per-trail table templates.
var trailDDL = []string{
	createWaypointsTmpl,
	createTripTmpl,
	createZerosTmpl,
	createAttractionsTmpl,
	createPlanTmpl,
	createMileageTmpl,
	createExpenseTmpl,
}

// createGlobalTables provisions the reference, app-config, and import-log
// tables. Idempotent.
func createGlobalTables(db *sql.DB) error {
	for _, ddl := range globalDDL {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

// EnsureTrail creates, if absent, the full table family and indexes for
// trail. It validates the name before any interpolation and is safe to
// call on every operation entry. Table creation is the only mutation; no
// data rows are seeded.
func (b *Backend) EnsureTrail(trail string) error {
	if err := types.ValidateTrailName(trail); err != nil {
		return err
	}
	db, err := b.conn()
	if err != nil {
		return err
	}

	for _, tmpl := range trailDDL {
		if _, err := db.Exec(fmt.Sprintf(tmpl, trail)); err != nil {
			return fmt.Errorf("provisioning tables for trail %s: %w", trail, err)
		}
	}
	for _, tmpl := range []string{idxWaypointsSeqTmpl, idxWaypointsCityTmpl} {
		if _, err := db.Exec(fmt.Sprintf(tmpl, trail, trail)); err != nil {
			return fmt.Errorf("provisioning indexes for trail %s: %w", trail, err)
		}
	}

	b.log.Debug("trail schema ensured", zap.String("trail", trail))
	return nil
}
