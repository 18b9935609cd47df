// CSV waypoint ingestion. The payload is plain comma-delimited UTF-8 with
// a header line; the format has no quoting or escaping, so an embedded
// comma is indistinguishable from a delimiter. Structural problems abort
// the import with nothing written; per-row parse problems are counted and
// skipped so one malformed line cannot block an otherwise valid route
// file.
package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/trailforge/camino/pkg/types"
)

// requiredHeaders is the column set a waypoint CSV must carry, in any
// order. Matching is case-insensitive after trimming.
var requiredHeaders = []string{
	"latitude", "longitude", "elevation", "distance", "hike_city",
	"gain", "loss", "pace_dist", "pace_gain", "fme", "facilities",
}

// ImportWaypoints replaces the waypoint set of trail with the rows parsed
// from payload. Accepted rows receive dense seq values starting at 1 in
// input order; variant_city is never populated by import.
//
// The delete and the insert loop run in one transaction that commits
// unconditionally, so an import where every row was skipped still commits
// an empty table. That case returns ErrNoRowsImported together with the
// report, since the call succeeds only when at least one row landed.
// A storage-layer failure mid-loop rolls the whole import back.
func (b *Backend) ImportWaypoints(trail, payload string) (*types.ImportReport, error) {
	if err := b.EnsureTrail(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.ReplaceAll(payload, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil, types.ErrEmptyInput
	}

	headers := splitFields(lines[0])
	for i, h := range headers {
		headers[i] = strings.ToLower(h)
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, ok := index[h]; !ok {
			index[h] = i
		}
	}

	var missing []string
	for _, h := range requiredHeaders {
		if _, ok := index[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, &types.HeaderMismatchError{Missing: missing}
	}

	// Column positions are fixed for the remainder of the import.
	latIdx := index["latitude"]
	lonIdx := index["longitude"]
	elevIdx := index["elevation"]
	distIdx := index["distance"]
	cityIdx := index["hike_city"]
	gainIdx := index["gain"]
	lossIdx := index["loss"]
	paceDistIdx := index["pace_dist"]
	paceGainIdx := index["pace_gain"]
	fmeIdx := index["fme"]
	facilitiesIdx := index["facilities"]

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	// Full replace: the waypoint table is a single authoritative snapshot
	// of the most recent import.
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s_waypoints", trail)); err != nil {
		return nil, fmt.Errorf("clearing waypoints for %s: %w", trail, err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf(
		`INSERT INTO %s_waypoints (
			seq, latitude, longitude, elevation, distance, hike_city,
			gain, loss, pace_dist, pace_gain, fme, facilities, variant_city
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)`, trail,
	))
	if err != nil {
		return nil, fmt.Errorf("preparing waypoint insert: %w", err)
	}
	defer stmt.Close()

	report := &types.ImportReport{Trail: trail}
	seq := 1

	for i, line := range lines {
		if i == 0 {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue // blank lines are not counted as skips
		}

		values := strings.Split(line, ",")
		if len(values) != len(headers) {
			report.Skipped++
			b.log.Debug("skipping line: wrong column count",
				zap.Int("line", i+1), zap.Int("columns", len(values)))
			continue
		}

		latitude, err1 := strconv.ParseFloat(strings.TrimSpace(values[latIdx]), 64)
		longitude, err2 := strconv.ParseFloat(strings.TrimSpace(values[lonIdx]), 64)
		elevation, err3 := strconv.ParseFloat(strings.TrimSpace(values[elevIdx]), 64)
		distance, err4 := strconv.ParseFloat(strings.TrimSpace(values[distIdx]), 64)
		gain, err5 := strconv.ParseFloat(strings.TrimSpace(values[gainIdx]), 64)
		loss, err6 := strconv.ParseFloat(strings.TrimSpace(values[lossIdx]), 64)
		paceDist, err7 := strconv.Atoi(strings.TrimSpace(values[paceDistIdx]))
		paceGain, err8 := strconv.Atoi(strings.TrimSpace(values[paceGainIdx]))
		if firstErr(err1, err2, err3, err4, err5, err6, err7, err8) != nil {
			report.Skipped++
			b.log.Debug("skipping line: unparsable numeric field", zap.Int("line", i+1))
			continue
		}

		// hike_city and facilities are optional free text; empty after
		// trim is stored as NULL.
		city := nullable(strings.TrimSpace(values[cityIdx]))
		facilities := nullable(strings.TrimSpace(values[facilitiesIdx]))
		fme := strings.TrimSpace(values[fmeIdx])

		if _, err := stmt.Exec(
			seq, latitude, longitude, elevation, distance, city,
			gain, loss, paceDist, paceGain, fme, facilities,
		); err != nil {
			// Storage-layer failure is transaction-fatal, unlike parse
			// failure which is row-fatal only.
			return nil, fmt.Errorf("inserting waypoint at line %d: %w", i+1, err)
		}
		seq++
		report.Imported++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing import for %s: %w", trail, err)
	}

	report.ImportID = generateUUID()
	if _, err := db.Exec(
		`INSERT INTO import_log (import_id, trail, imported, skipped, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		report.ImportID, trail, report.Imported, report.Skipped,
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return nil, fmt.Errorf("recording import log: %w", err)
	}

	b.log.Info("waypoint import finished",
		zap.String("trail", trail),
		zap.String("import_id", report.ImportID),
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped))

	if report.Imported == 0 {
		return report, types.ErrNoRowsImported
	}
	return report, nil
}

// ImportRecord is one row of the import audit log.
type ImportRecord struct {
	ImportID  string
	Trail     string
	Imported  int
	Skipped   int
	CreatedAt time.Time
}

// ImportLog returns the recorded import runs for trail, newest first.
func (b *Backend) ImportLog(trail string) ([]ImportRecord, error) {
	if err := types.ValidateTrailName(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT import_id, trail, imported, skipped, created_at
		 FROM import_log WHERE trail = ? ORDER BY created_at DESC`, trail,
	)
	if err != nil {
		return nil, fmt.Errorf("querying import log: %w", err)
	}
	defer rows.Close()

	var records []ImportRecord
	for rows.Next() {
		var r ImportRecord
		var createdAt string
		if err := rows.Scan(&r.ImportID, &r.Trail, &r.Imported, &r.Skipped, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning import record: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating import log: %w", err)
	}
	return records, nil
}

// splitFields splits a header or data line on commas and trims each token.
func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// nullable maps "" to a NULL column value and anything else to itself.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
