// Journal accessors: plan, mileage, and expense rows, scoped by trail.
// Append and update only; the only ordering is by date.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/trailforge/camino/pkg/types"
)

// AddPlan appends a planned day for trail and returns its row ID.
func (b *Backend) AddPlan(trail string, p types.Plan) (int64, error) {
	if p.Date == "" || p.StopCity == "" {
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
		`INSERT INTO %s_plan (
			date, stop_city, plan_distance, plan_gain, plan_loss, plan_slope,
			plan_duration, stop_type
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, trail),
		p.Date, p.StopCity, p.Distance, p.Gain, p.Loss, p.Slope, p.Duration, p.StopType,
	)
	if err != nil {
		return 0, fmt.Errorf("adding plan for %s: %w", trail, err)
	}
	return res.LastInsertId()
}

// Plans returns the planned days for trail ordered by date.
func (b *Backend) Plans(trail string) ([]types.Plan, error) {
	if err := types.ValidateTrailName(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		`SELECT id_no, date, stop_city, plan_distance, plan_gain, plan_loss,
		        plan_slope, plan_duration, stop_type
		 FROM %s_plan ORDER BY date ASC`, trail,
	))
	if err != nil {
		return nil, fmt.Errorf("querying plans for %s: %w", trail, err)
	}
	defer rows.Close()

	var results []types.Plan
	for rows.Next() {
		var p types.Plan
		if err := rows.Scan(
			&p.ID, &p.Date, &p.StopCity, &p.Distance, &p.Gain, &p.Loss,
			&p.Slope, &p.Duration, &p.StopType,
		); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return results, nil
}

// AddMileage appends a recorded hiking day for trail and returns its
// row ID.
func (b *Backend) AddMileage(trail string, m types.Mileage) (int64, error) {
	if m.Date == "" || m.StopCity == "" {
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
		`INSERT INTO %s_mileage (
			date, stop_city, stop_type, start_time, stop_time,
			actual_distance, actual_gain, actual_loss, actual_slope,
			actual_duration, actual_moving, actual_pace, zero_distance,
			high_temp, pilgrims, note_mileage
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, trail),
		m.Date, m.StopCity, m.StopType, nullable(m.StartTime), nullable(m.StopTime),
		m.ActualDistance, m.ActualGain, m.ActualLoss, m.ActualSlope,
		nullable(m.ActualDuration), nullable(m.ActualMoving), nullable(m.ActualPace),
		m.ZeroDistance, nullable(m.HighTemp), m.Pilgrims, nullable(m.Note),
	)
	if err != nil {
		return 0, fmt.Errorf("adding mileage for %s: %w", trail, err)
	}
	return res.LastInsertId()
}

// Mileages returns the recorded hiking days for trail ordered by date.
func (b *Backend) Mileages(trail string) ([]types.Mileage, error) {
	if err := types.ValidateTrailName(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		`SELECT id_no, date, stop_city, stop_type, start_time, stop_time,
		        actual_distance, actual_gain, actual_loss, actual_slope,
		        actual_duration, actual_moving, actual_pace, zero_distance,
		        high_temp, pilgrims, note_mileage
		 FROM %s_mileage ORDER BY date ASC`, trail,
	))
	if err != nil {
		return nil, fmt.Errorf("querying mileage for %s: %w", trail, err)
	}
	defer rows.Close()

	var results []types.Mileage
	for rows.Next() {
		var m types.Mileage
		var startTime, stopTime, duration, moving, pace, highTemp, note sql.NullString
		var dist, gain, loss, slope, zeroDist sql.NullFloat64
		var pilgrims sql.NullInt64
		if err := rows.Scan(
			&m.ID, &m.Date, &m.StopCity, &m.StopType, &startTime, &stopTime,
			&dist, &gain, &loss, &slope,
			&duration, &moving, &pace, &zeroDist,
			&highTemp, &pilgrims, &note,
		); err != nil {
			return nil, fmt.Errorf("scanning mileage: %w", err)
		}
		m.StartTime = startTime.String
		m.StopTime = stopTime.String
		m.ActualDistance = dist.Float64
		m.ActualGain = gain.Float64
		m.ActualLoss = loss.Float64
		m.ActualSlope = slope.Float64
		m.ActualDuration = duration.String
		m.ActualMoving = moving.String
		m.ActualPace = pace.String
		m.ZeroDistance = zeroDist.Float64
		m.HighTemp = highTemp.String
		m.Pilgrims = int(pilgrims.Int64)
		m.Note = note.String
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mileage: %w", err)
	}
	return results, nil
}

// AddExpense appends a recorded purchase for trail and returns its row ID.
func (b *Backend) AddExpense(trail string, e types.Expense) (int64, error) {
	if e.Date == "" || e.StopCity == "" {
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
		`INSERT INTO %s_expense (
			date, stop_city, stop_type, payment, payment_type,
			expense_category, expense_type, vendor, local_amount,
			currency, usd_amount, note_expense
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, trail),
		e.Date, e.StopCity, e.StopType, e.Payment, e.PaymentType,
		e.Category, e.ExpenseType, nullable(e.Vendor), e.LocalAmount,
		e.Currency, e.USDAmount, nullable(e.Note),
	)
	if err != nil {
		return 0, fmt.Errorf("adding expense for %s: %w", trail, err)
	}
	return res.LastInsertId()
}

// Expenses returns the recorded purchases for trail ordered by date.
func (b *Backend) Expenses(trail string) ([]types.Expense, error) {
	if err := types.ValidateTrailName(trail); err != nil {
		return nil, err
	}
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(fmt.Sprintf(
		`SELECT id_no, date, stop_city, stop_type, payment, payment_type,
		        expense_category, expense_type, vendor, local_amount,
		        currency, usd_amount, note_expense
		 FROM %s_expense ORDER BY date ASC`, trail,
	))
	if err != nil {
		return nil, fmt.Errorf("querying expenses for %s: %w", trail, err)
	}
	defer rows.Close()

	var results []types.Expense
	for rows.Next() {
		var e types.Expense
		var vendor, note sql.NullString
		if err := rows.Scan(
			&e.ID, &e.Date, &e.StopCity, &e.StopType, &e.Payment, &e.PaymentType,
			&e.Category, &e.ExpenseType, &vendor, &e.LocalAmount,
			&e.Currency, &e.USDAmount, &note,
		); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		e.Vendor = vendor.String
		e.Note = note.String
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expenses: %w", err)
	}
	return results, nil
}
