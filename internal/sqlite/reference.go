// Reference table accessors: categories, currencies, and payment types.
// These are global lookups, independent of trail selection. There is no
// delete path; items are disabled so journal rows that store the name as
// free text keep resolving.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/trailforge/camino/pkg/types"
)

// Categories returns every category, enabled and disabled, in insertion
// order.
func (b *Backend) Categories() ([]types.Category, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id_no, category, category_type, enabled FROM camino_category ORDER BY id_no ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var results []types.Category
	for rows.Next() {
		var c types.Category
		var ctype sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &ctype, &c.Enabled); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		c.Type = ctype.String
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return results, nil
}

// AddCategory inserts a category, always enabled, and returns its row ID.
func (b *Backend) AddCategory(name, categoryType string) (int64, error) {
	if name == "" {
		return 0, types.ErrInvalidData
	}
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(
		"INSERT INTO camino_category (category, category_type, enabled) VALUES (?, ?, 1)",
		name, nullable(categoryType),
	)
	if err != nil {
		return 0, fmt.Errorf("adding category: %w", err)
	}
	return res.LastInsertId()
}

// SetCategoryEnabled toggles the enabled flag on a single category.
// Returns ErrNotFound when no category has the given ID.
func (b *Backend) SetCategoryEnabled(id int64, enabled bool) error {
	return b.setEnabled("camino_category", id, enabled)
}

// Currencies returns every currency, enabled and disabled, in insertion
// order.
func (b *Backend) Currencies() ([]types.Currency, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id_no, currency, exchange_rate, enabled FROM camino_currency ORDER BY id_no ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying currencies: %w", err)
	}
	defer rows.Close()

	var results []types.Currency
	for rows.Next() {
		var c types.Currency
		if err := rows.Scan(&c.ID, &c.Name, &c.ExchangeRate, &c.Enabled); err != nil {
			return nil, fmt.Errorf("scanning currency: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating currencies: %w", err)
	}
	return results, nil
}

// AddCurrency inserts a currency, always enabled, and returns its row ID.
func (b *Backend) AddCurrency(name string, exchangeRate float64) (int64, error) {
	if name == "" {
		return 0, types.ErrInvalidData
	}
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(
		"INSERT INTO camino_currency (currency, exchange_rate, enabled) VALUES (?, ?, 1)",
		name, exchangeRate,
	)
	if err != nil {
		return 0, fmt.Errorf("adding currency: %w", err)
	}
	return res.LastInsertId()
}

// SetCurrencyEnabled toggles the enabled flag on a single currency.
func (b *Backend) SetCurrencyEnabled(id int64, enabled bool) error {
	return b.setEnabled("camino_currency", id, enabled)
}

// Payments returns every payment method, enabled and disabled, in
// insertion order.
func (b *Backend) Payments() ([]types.Payment, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id_no, payment, payment_type, enabled FROM camino_payment ORDER BY id_no ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying payments: %w", err)
	}
	defer rows.Close()

	var results []types.Payment
	for rows.Next() {
		var p types.Payment
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Enabled); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payments: %w", err)
	}
	return results, nil
}

// AddPayment inserts a payment method, always enabled, and returns its
// row ID.
func (b *Backend) AddPayment(name, paymentType string) (int64, error) {
	if name == "" || paymentType == "" {
		return 0, types.ErrInvalidData
	}
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(
		"INSERT INTO camino_payment (payment, payment_type, enabled) VALUES (?, ?, 1)",
		name, paymentType,
	)
	if err != nil {
		return 0, fmt.Errorf("adding payment: %w", err)
	}
	return res.LastInsertId()
}

// SetPaymentEnabled toggles the enabled flag on a single payment method.
func (b *Backend) SetPaymentEnabled(id int64, enabled bool) error {
	return b.setEnabled("camino_payment", id, enabled)
}

// setEnabled toggles the enabled column on one row of a reference table.
// The table name is one of the fixed camino_* constants, never caller
// input.
func (b *Backend) setEnabled(table string, id int64, enabled bool) error {
	if id <= 0 {
		return types.ErrInvalidID
	}
	db, err := b.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec(
		fmt.Sprintf("UPDATE %s SET enabled = ? WHERE id_no = ?", table),
		enabled, id,
	)
	if err != nil {
		return fmt.Errorf("updating enabled on %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating enabled on %s: %w", table, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
