// Attraction accessors, scoped by trail.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/trailforge/camino/pkg/types"
)

// Attractions returns the points of interest for trail in insertion order.
func (b *Backend) Attractions(trail string) ([]types.Attraction, error) {
	if err := types.ValidateTrailName(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		`SELECT id_no, attraction_city, attraction, attraction_map
		 FROM %s_attractions ORDER BY id_no ASC`, trail,
	))
	if err != nil {
		return nil, fmt.Errorf("querying attractions for %s: %w", trail, err)
	}
	defer rows.Close()

	var results []types.Attraction
	for rows.Next() {
		var a types.Attraction
		var mapRef sql.NullString
		if err := rows.Scan(&a.ID, &a.City, &a.Name, &mapRef); err != nil {
			return nil, fmt.Errorf("scanning attraction: %w", err)
		}
		a.Map = mapRef.String
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attractions: %w", err)
	}
	return results, nil
}

// AttractionCities returns the distinct cities with attractions on trail,
// sorted lexicographically.
func (b *Backend) AttractionCities(trail string) ([]string, error) {
	if err := types.ValidateTrailName(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT DISTINCT attraction_city FROM %s_attractions ORDER BY attraction_city ASC", trail,
	))
	if err != nil {
		return nil, fmt.Errorf("querying attraction cities for %s: %w", trail, err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("scanning attraction city: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attraction cities: %w", err)
	}
	return cities, nil
}

// AddAttraction inserts a point of interest for trail and returns its
// row ID. The map reference is optional.
func (b *Backend) AddAttraction(trail, city, name, mapRef string) (int64, error) {
	if city == "" || name == "" {
		return 0, types.ErrInvalidData
	}
	if err := b.EnsureTrail(trail); err != nil {
		return 0, err
	}
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(fmt.Sprintf(
		"INSERT INTO %s_attractions (attraction_city, attraction, attraction_map) VALUES (?, ?, ?)", trail,
	), city, name, nullable(mapRef))
	if err != nil {
		return 0, fmt.Errorf("adding attraction for %s: %w", trail, err)
	}
	return res.LastInsertId()
}

// UpdateAttraction rewrites an existing attraction row.
// Returns ErrNotFound when no row has the given ID.
func (b *Backend) UpdateAttraction(trail string, id int64, city, name, mapRef string) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	if city == "" || name == "" {
		return types.ErrInvalidData
	}
	if err := types.ValidateTrailName(trail); err != nil {
		return err
	}
	db, err := b.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec(fmt.Sprintf(
		`UPDATE %s_attractions SET attraction_city = ?, attraction = ?, attraction_map = ?
		 WHERE id_no = ?`, trail,
	), city, name, nullable(mapRef), id)
	if err != nil {
		return fmt.Errorf("updating attraction for %s: %w", trail, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating attraction for %s: %w", trail, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
