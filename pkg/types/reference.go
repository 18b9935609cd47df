package types

// Reference items are global lookup values independent of trail selection.
// They are never deleted: retirement is the Enabled flag, so journal rows
// that store the name as free text keep resolving for historical display.

// Category is an expense category.
type Category struct {
	ID      int64  `json:"id_no"`
	Name    string `json:"category"`
	Type    string `json:"category_type,omitempty"`
	Enabled bool   `json:"enabled"`
}

// Currency carries an exchange rate relative to the home currency.
type Currency struct {
	ID           int64   `json:"id_no"`
	Name         string  `json:"currency"`
	ExchangeRate float64 `json:"exchange_rate"`
	Enabled      bool    `json:"enabled"`
}

// Payment is a payment method with its broad type (cash, card, ...).
type Payment struct {
	ID      int64  `json:"id_no"`
	Name    string `json:"payment"`
	Type    string `json:"payment_type"`
	Enabled bool   `json:"enabled"`
}

// Zero is a rest-day city marker scoped to a trail.
type Zero struct {
	ID   int64  `json:"id_no"`
	City string `json:"zero_city"`
}

// Attraction is a point of interest scoped to a trail.
type Attraction struct {
	ID   int64  `json:"id_no"`
	City string `json:"attraction_city"`
	Name string `json:"attraction"`
	Map  string `json:"attraction_map,omitempty"`
}
