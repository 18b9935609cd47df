package types

// Waypoint is a georeferenced point along a trail's route. Seq is the
// canonical route position: dense, starting at 1, assigned in import order.
// It is distinct from the storage row ID.
type Waypoint struct {
	ID        int64   `json:"id_no"`
	Seq       int     `json:"seq"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`

	// Distance is the segment distance from the previous waypoint.
	Distance float64 `json:"distance"`

	// City is the named stop at this waypoint; empty means none.
	City string `json:"hike_city,omitempty"`

	// Gain and Loss are the cumulative elevation change over the segment.
	Gain float64 `json:"gain"`
	Loss float64 `json:"loss"`

	// PaceDist and PaceGain are the planning targets in effect at this point.
	PaceDist int `json:"pace_dist"`
	PaceGain int `json:"pace_gain"`

	// Source is the free-text source marker (the FME column of route exports).
	Source string `json:"fme"`

	// Facilities describes services at the waypoint; empty means none recorded.
	Facilities string `json:"facilities,omitempty"`

	// VariantCity labels an alternate-route stop. Never populated by CSV
	// import.
	VariantCity string `json:"variant_city,omitempty"`
}

// Pace is the planning pair carried on each waypoint.
type Pace struct {
	Distance int `json:"distance"`
	Gain     int `json:"gain"`
}

// ImportReport summarizes one ImportWaypoints run.
type ImportReport struct {
	// ImportID is the UUID v7 recorded in the import log.
	ImportID string `json:"import_id"`
	Trail    string `json:"trail"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}
