// Zero (rest-day) accessors, scoped by trail.
package sqlite

import (
	"fmt"

	"github.com/trailforge/camino/pkg/types"
)

// Zeros returns the rest-day markers for trail in insertion order.
func (b *Backend) Zeros(trail string) ([]types.Zero, error) {
	if err := types.ValidateTrailName(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		"SELECT id_no, zero_city FROM %s_zeros ORDER BY id_no ASC", trail,
	))
	if err != nil {
		return nil, fmt.Errorf("querying zeros for %s: %w", trail, err)
	}
	defer rows.Close()

	var results []types.Zero
	for rows.Next() {
		var z types.Zero
		if err := rows.Scan(&z.ID, &z.City); err != nil {
			return nil, fmt.Errorf("scanning zero: %w", err)
		}
		results = append(results, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating zeros: %w", err)
	}
	return results, nil
}

// AddZero inserts a rest-day city for trail and returns its row ID.
func (b *Backend) AddZero(trail, city string) (int64, error) {
	if city == "" {
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
		"INSERT INTO %s_zeros (zero_city) VALUES (?)", trail,
	), city)
	if err != nil {
		return 0, fmt.Errorf("adding zero for %s: %w", trail, err)
	}
	return res.LastInsertId()
}

// UpdateZero renames the rest-day city on an existing row.
// Returns ErrNotFound when no row has the given ID.
func (b *Backend) UpdateZero(trail string, id int64, city string) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	if city == "" {
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
		"UPDATE %s_zeros SET zero_city = ? WHERE id_no = ?", trail,
	), city, id)
	if err != nil {
		return fmt.Errorf("updating zero for %s: %w", trail, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating zero for %s: %w", trail, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
