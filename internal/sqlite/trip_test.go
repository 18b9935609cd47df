package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailforge/camino/pkg/types"
)

func TestLoadTripSettingsBeforeSave(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.LoadTripSettings("francigena")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSaveAndLoadTripSettings(t *testing.T) {
	b := newTestBackend(t)

	settings := types.NewTripSettings("francigena", "Via Francigena 2026")
	require.NoError(t, b.SaveTripSettings("francigena", settings))

	loaded, err := b.LoadTripSettings("francigena")
	require.NoError(t, err)
	assert.Equal(t, "francigena", loaded.SelectTrail)
	assert.Equal(t, "Via Francigena 2026", loaded.TripTitle)
	assert.Equal(t, types.DefaultDistanceUOM, loaded.DistanceUOM)
	assert.Equal(t, types.DefaultTempUOM, loaded.TempUOM)
	assert.Equal(t, types.DefaultWeightUOM, loaded.WeightUOM)
	assert.Equal(t, types.DefaultPlanningRange, loaded.PlanningRange)
}

func TestSaveTripSettingsUpdatesInPlace(t *testing.T) {
	b := newTestBackend(t)

	first := types.NewTripSettings("francigena", "First title")
	require.NoError(t, b.SaveTripSettings("francigena", first))

	second := types.NewTripSettings("francigena", "Second title")
	second.DistanceUOM = "Mi"
	second.TempUOM = "F"
	second.WeightUOM = "Lb"
	second.PlanningRange = 30
	require.NoError(t, b.SaveTripSettings("francigena", second))

	loaded, err := b.LoadTripSettings("francigena")
	require.NoError(t, err)
	assert.Equal(t, "Second title", loaded.TripTitle)
	assert.Equal(t, "Mi", loaded.DistanceUOM)
	assert.Equal(t, "F", loaded.TempUOM)
	assert.Equal(t, "Lb", loaded.WeightUOM)
	assert.Equal(t, 30.0, loaded.PlanningRange)

	// Still exactly one row.
	db, err := b.conn()
	require.NoError(t, err)
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM francigena_trip").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSaveTripSettingsValidation(t *testing.T) {
	b := newTestBackend(t)

	tests := []struct {
		name   string
		mutate func(*types.TripSettings)
	}{
		{name: "bad distance uom", mutate: func(s *types.TripSettings) { s.DistanceUOM = "Furlongs" }},
		{name: "bad temp uom", mutate: func(s *types.TripSettings) { s.TempUOM = "K" }},
		{name: "bad weight uom", mutate: func(s *types.TripSettings) { s.WeightUOM = "Stone" }},
		{name: "zero planning range", mutate: func(s *types.TripSettings) { s.PlanningRange = 0 }},
		{name: "negative planning range", mutate: func(s *types.TripSettings) { s.PlanningRange = -10 }},
		{name: "empty title", mutate: func(s *types.TripSettings) { s.TripTitle = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := types.NewTripSettings("francigena", "Trip")
			tt.mutate(settings)
			err := b.SaveTripSettings("francigena", settings)
			assert.ErrorIs(t, err, types.ErrInvalidData)
		})
	}

	err := b.SaveTripSettings("francigena", nil)
	assert.ErrorIs(t, err, types.ErrInvalidData)
}
