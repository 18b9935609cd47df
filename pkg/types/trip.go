package types

// Unit-of-measure defaults applied when the trip row is first created.
const (
	DefaultDistanceUOM   = "Km"
	DefaultTempUOM       = "C"
	DefaultWeightUOM     = "Kg"
	DefaultPlanningRange = 50.0
)

// TripSettings is the single logical settings row for a trail. The trip
// table also carries total columns (start/return date, aggregate
// distance/gain/loss/slope, day count) that are seeded zero or blank on
// first save and never written by SaveTripSettings.
type TripSettings struct {
	SelectTrail   string  `json:"select_trail" validate:"required"`
	TripTitle     string  `json:"trip_title" validate:"required"`
	DistanceUOM   string  `json:"distance_uom" validate:"oneof=Km Mi"`
	TempUOM       string  `json:"temp_uom" validate:"oneof=C F"`
	WeightUOM     string  `json:"weight_uom" validate:"oneof=Kg Lb"`
	PlanningRange float64 `json:"planning_range" validate:"gt=0"`
}

// NewTripSettings returns settings for trail with the default units.
func NewTripSettings(trail, title string) *TripSettings {
	return &TripSettings{
		SelectTrail:   trail,
		TripTitle:     title,
		DistanceUOM:   DefaultDistanceUOM,
		TempUOM:       DefaultTempUOM,
		WeightUOM:     DefaultWeightUOM,
		PlanningRange: DefaultPlanningRange,
	}
}
