package types

// Journal rows are date-stamped, city-stamped records of planned versus
// actual daily progress and spending. They are append/update only with no
// ordering invariant beyond date. Optional text fields use "" for absence
// and optional numeric fields use zero.

// Plan is one planned day of the trip.
type Plan struct {
	ID       int64   `json:"id_no"`
	Date     string  `json:"date"`
	StopCity string  `json:"stop_city"`
	Distance float64 `json:"plan_distance"`
	Gain     float64 `json:"plan_gain"`
	Loss     float64 `json:"plan_loss"`
	Slope    float64 `json:"plan_slope"`
	Duration string  `json:"plan_duration"`
	StopType string  `json:"stop_type"`
}

// Mileage is the recorded outcome of one hiking day.
type Mileage struct {
	ID             int64   `json:"id_no"`
	Date           string  `json:"date"`
	StopCity       string  `json:"stop_city"`
	StopType       string  `json:"stop_type"`
	StartTime      string  `json:"start_time,omitempty"`
	StopTime       string  `json:"stop_time,omitempty"`
	ActualDistance float64 `json:"actual_distance,omitempty"`
	ActualGain     float64 `json:"actual_gain,omitempty"`
	ActualLoss     float64 `json:"actual_loss,omitempty"`
	ActualSlope    float64 `json:"actual_slope,omitempty"`
	ActualDuration string  `json:"actual_duration,omitempty"`
	ActualMoving   string  `json:"actual_moving,omitempty"`
	ActualPace     string  `json:"actual_pace,omitempty"`
	ZeroDistance   float64 `json:"zero_distance,omitempty"`
	HighTemp       string  `json:"high_temp,omitempty"`
	Pilgrims       int     `json:"pilgrims,omitempty"`
	Note           string  `json:"note_mileage,omitempty"`
}

// Expense is one recorded purchase. Payment, PaymentType, Category, and
// Currency store reference item names as free text, which is why reference
// items are disabled rather than deleted.
type Expense struct {
	ID          int64   `json:"id_no"`
	Date        string  `json:"date"`
	StopCity    string  `json:"stop_city"`
	StopType    string  `json:"stop_type"`
	Payment     string  `json:"payment"`
	PaymentType string  `json:"payment_type"`
	Category    string  `json:"expense_category"`
	ExpenseType string  `json:"expense_type"`
	Vendor      string  `json:"vendor,omitempty"`
	LocalAmount float64 `json:"local_amount"`
	Currency    string  `json:"currency"`
	USDAmount   float64 `json:"usd_amount"`
	Note        string  `json:"note_expense,omitempty"`
}
