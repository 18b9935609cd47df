// Waypoint accessors: route-ordered listing, hiking-city queries, the
// pace cascade, and trail clearing.
package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/trailforge/camino/pkg/types"
)

// Waypoints returns the full waypoint set for trail in route order.
func (b *Backend) Waypoints(trail string) ([]types.Waypoint, error) {
	if err := types.ValidateTrailName(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		`SELECT id_no, seq, latitude, longitude, elevation, distance, hike_city,
		        gain, loss, pace_dist, pace_gain, fme, facilities, variant_city
		 FROM %s_waypoints ORDER BY seq ASC`, trail,
	))
	if err != nil {
		return nil, fmt.Errorf("querying waypoints for %s: %w", trail, err)
	}
	defer rows.Close()

	var results []types.Waypoint
	for rows.Next() {
		w, err := hydrateWaypoint(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating waypoint: %w", err)
		}
		results = append(results, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating waypoints: %w", err)
	}
	return results, nil
}

// WaypointCount returns the number of waypoints stored for trail.
func (b *Backend) WaypointCount(trail string) (int, error) {
	if err := types.ValidateTrailName(trail); err != nil {
		return 0, err
	}
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRow(
		fmt.Sprintf("SELECT COUNT(*) FROM %s_waypoints", trail),
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting waypoints for %s: %w", trail, err)
	}
	return count, nil
}

// HikingCities returns the distinct named stops on trail, sorted
// lexicographically rather than by route order.
func (b *Backend) HikingCities(trail string) ([]string, error) {
	if err := types.ValidateTrailName(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		`SELECT DISTINCT hike_city FROM %s_waypoints
		 WHERE hike_city IS NOT NULL ORDER BY hike_city ASC`, trail,
	))
	if err != nil {
		return nil, fmt.Errorf("querying hiking cities for %s: %w", trail, err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("scanning city: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cities: %w", err)
	}
	return cities, nil
}

// PaceSettings returns the pace pair of the lowest-seq waypoint at city.
// Returns ErrNotFound when the city does not appear on the trail.
func (b *Backend) PaceSettings(trail, city string) (*types.Pace, error) {
	if err := types.ValidateTrailName(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	var p types.Pace
	err = db.QueryRow(fmt.Sprintf(
		`SELECT pace_dist, pace_gain FROM %s_waypoints
		 WHERE hike_city = ? ORDER BY seq ASC LIMIT 1`, trail,
	), city).Scan(&p.Distance, &p.Gain)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying pace settings for %s: %w", trail, err)
	}
	return &p, nil
}

// CascadePace rewrites pace_dist and pace_gain on every waypoint from the
// route-order first occurrence of fromCity to the end of the trail. When
// the city does not appear, the anchor seq is 0 and the whole table is
// rewritten. Waypoints before the anchor are left unchanged: the pacing
// plan is a step function over route order, not a weighted recomputation.
func (b *Backend) CascadePace(trail, fromCity string, newDistance, newGain int) error {
	if err := types.ValidateTrailName(trail); err != nil {
		return err
	}
	db, err := b.conn()
	if err != nil {
		return err
	}

	anchor := 0
	err = db.QueryRow(fmt.Sprintf(
		`SELECT seq FROM %s_waypoints
		 WHERE hike_city = ? ORDER BY seq ASC LIMIT 1`, trail,
	), fromCity).Scan(&anchor)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("locating pace anchor for %s: %w", trail, err)
	}

	if _, err := db.Exec(fmt.Sprintf(
		"UPDATE %s_waypoints SET pace_dist = ?, pace_gain = ? WHERE seq >= ?", trail,
	), newDistance, newGain, anchor); err != nil {
		return fmt.Errorf("cascading pace for %s: %w", trail, err)
	}

	b.log.Info("pace cascaded",
		zap.String("trail", trail),
		zap.String("from_city", fromCity),
		zap.Int("anchor_seq", anchor),
		zap.Int("pace_dist", newDistance),
		zap.Int("pace_gain", newGain))
	return nil
}

// ClearTrail deletes every row from the trail's waypoint, attraction, and
// zero tables. The tables themselves remain; trails are never dropped.
func (b *Backend) ClearTrail(trail string) error {
	if err := types.ValidateTrailName(trail); err != nil {
		return err
	}
	db, err := b.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning clear transaction: %w", err)
	}
	defer tx.Rollback()

	for _, suffix := range []string{"waypoints", "attractions", "zeros"} {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s_%s", trail, suffix)); err != nil {
			return fmt.Errorf("clearing %s_%s: %w", trail, suffix, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing clear for %s: %w", trail, err)
	}

	b.log.Info("trail cleared", zap.String("trail", trail))
	return nil
}

// hydrateWaypoint converts a row from sql.Rows into a types.Waypoint.
// NULL city, facilities, and variant_city columns hydrate to "".
func hydrateWaypoint(rows *sql.Rows) (types.Waypoint, error) {
	var w types.Waypoint
	var city, facilities, variantCity sql.NullString
	if err := rows.Scan(
		&w.ID, &w.Seq, &w.Latitude, &w.Longitude, &w.Elevation, &w.Distance,
		&city, &w.Gain, &w.Loss, &w.PaceDist, &w.PaceGain, &w.Source,
		&facilities, &variantCity,
	); err != nil {
		return types.Waypoint{}, err
	}
	w.City = city.String
	w.Facilities = facilities.String
	w.VariantCity = variantCity.String
	return w, nil
}
