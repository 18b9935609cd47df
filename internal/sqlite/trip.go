// Trip settings accessors. Each trail has exactly one logical settings
// row; existence is decided by row count, never by a keyed lookup.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/trailforge/camino/pkg/types"
)

// validate checks TripSettings field rules on save.
var validate = validator.New()

// LoadTripSettings reads the settings row for trail.
// Returns ErrNotFound if the trail has never been saved.
func (b *Backend) LoadTripSettings(trail string) (*types.TripSettings, error) {
	if err := b.EnsureTrail(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	var s types.TripSettings
	var planningRange sql.NullFloat64
	err = db.QueryRow(fmt.Sprintf(
		`SELECT select_trail, trip_title, distance_uom, temp_uom, weight_uom, planning_range
		 FROM %s_trip LIMIT 1`, trail,
	)).Scan(&s.SelectTrail, &s.TripTitle, &s.DistanceUOM, &s.TempUOM, &s.WeightUOM, &planningRange)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading trip settings for %s: %w", trail, err)
	}

	s.PlanningRange = types.DefaultPlanningRange
	if planningRange.Valid {
		s.PlanningRange = planningRange.Float64
	}
	return &s, nil
}

// SaveTripSettings inserts the settings row when none exists, seeding the
// total columns zero or blank, and otherwise updates the mutable columns
// in place. The totals are never written here.
func (b *Backend) SaveTripSettings(trail string, settings *types.TripSettings) error {
	if settings == nil {
		return types.ErrInvalidData
	}
	if err := validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}
	if err := b.EnsureTrail(trail); err != nil {
		return err
	}
	db, err := b.conn()
	if err != nil {
		return err
	}

	var count int
	if err := db.QueryRow(
		fmt.Sprintf("SELECT COUNT(*) FROM %s_trip", trail),
	).Scan(&count); err != nil {
		return fmt.Errorf("checking trip settings for %s: %w", trail, err)
	}

	if count == 0 {
		_, err = db.Exec(fmt.Sprintf(
			`INSERT INTO %s_trip (
				select_trail, trip_title, distance_uom, temp_uom, weight_uom, planning_range,
				trip_start_date, trip_return_date, trip_distance, trip_gain, trip_loss, trip_slope, trip_days
			 ) VALUES (?, ?, ?, ?, ?, ?, '', '', 0, 0, 0, 0, 0)`, trail),
			settings.SelectTrail, settings.TripTitle,
			settings.DistanceUOM, settings.TempUOM, settings.WeightUOM, settings.PlanningRange,
		)
	} else {
		_, err = db.Exec(fmt.Sprintf(
			`UPDATE %s_trip SET
				select_trail = ?, trip_title = ?, distance_uom = ?, temp_uom = ?,
				weight_uom = ?, planning_range = ?`, trail),
			settings.SelectTrail, settings.TripTitle,
			settings.DistanceUOM, settings.TempUOM, settings.WeightUOM, settings.PlanningRange,
		)
	}
	if err != nil {
		return fmt.Errorf("saving trip settings for %s: %w", trail, err)
	}
	return nil
}
