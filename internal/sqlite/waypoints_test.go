package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailforge/camino/pkg/types"
)

// seedRoute imports a small route with repeated cities and a gap of
// unnamed waypoints.
func seedRoute(t *testing.T, b *Backend, trail string) {
	t.Helper()
	_, err := b.ImportWaypoints(trail, csvPayload(
		"43.1,11.2,300,0,Siena,0,0,25,800,gpx,",
		"43.2,11.3,320,4.5,,120,80,25,800,gpx,",
		"43.3,11.4,280,5.1,Monteriggioni,60,100,25,800,gpx,",
		"43.4,11.5,290,3.2,,30,20,25,800,gpx,",
		"43.5,11.6,310,4.8,Siena,90,70,25,800,gpx,",
		"43.6,11.7,250,6.0,Lucca,40,110,25,800,gpx,",
	))
	require.NoError(t, err)
}

func TestHikingCities(t *testing.T) {
	b := newTestBackend(t)
	seedRoute(t, b, "francigena")

	cities, err := b.HikingCities("francigena")
	require.NoError(t, err)

	// Distinct and sorted; the unnamed waypoints do not appear.
	assert.Equal(t, []string{"Lucca", "Monteriggioni", "Siena"}, cities)
}

func TestPaceSettings(t *testing.T) {
	b := newTestBackend(t)
	seedRoute(t, b, "francigena")

	pace, err := b.PaceSettings("francigena", "Siena")
	require.NoError(t, err)
	assert.Equal(t, 25, pace.Distance)
	assert.Equal(t, 800, pace.Gain)

	_, err = b.PaceSettings("francigena", "Firenze")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCascadePaceFromCity(t *testing.T) {
	b := newTestBackend(t)
	seedRoute(t, b, "francigena")

	// Monteriggioni first occurs at seq 3.
	require.NoError(t, b.CascadePace("francigena", "Monteriggioni", 30, 1000))

	waypoints, err := b.Waypoints("francigena")
	require.NoError(t, err)
	require.Len(t, waypoints, 6)

	for _, w := range waypoints {
		if w.Seq >= 3 {
			assert.Equal(t, 30, w.PaceDist, "seq %d", w.Seq)
			assert.Equal(t, 1000, w.PaceGain, "seq %d", w.Seq)
		} else {
			assert.Equal(t, 25, w.PaceDist, "seq %d", w.Seq)
			assert.Equal(t, 800, w.PaceGain, "seq %d", w.Seq)
		}
	}
}

func TestCascadePaceAnchorsAtFirstOccurrence(t *testing.T) {
	b := newTestBackend(t)
	seedRoute(t, b, "francigena")

	// Siena appears at seq 1 and seq 5; the anchor is seq 1, so the
	// whole trail is rewritten.
	require.NoError(t, b.CascadePace("francigena", "Siena", 20, 600))

	waypoints, err := b.Waypoints("francigena")
	require.NoError(t, err)
	for _, w := range waypoints {
		assert.Equal(t, 20, w.PaceDist, "seq %d", w.Seq)
		assert.Equal(t, 600, w.PaceGain, "seq %d", w.Seq)
	}
}

func TestCascadePaceUnknownCityRewritesAll(t *testing.T) {
	b := newTestBackend(t)
	seedRoute(t, b, "francigena")

	require.NoError(t, b.CascadePace("francigena", "Firenze", 15, 500))

	waypoints, err := b.Waypoints("francigena")
	require.NoError(t, err)
	for _, w := range waypoints {
		assert.Equal(t, 15, w.PaceDist, "seq %d", w.Seq)
		assert.Equal(t, 500, w.PaceGain, "seq %d", w.Seq)
	}
}

func TestWaypointCount(t *testing.T) {
	b := newTestBackend(t)
	seedRoute(t, b, "francigena")

	count, err := b.WaypointCount("francigena")
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestClearTrail(t *testing.T) {
	b := newTestBackend(t)
	seedRoute(t, b, "francigena")

	_, err := b.AddZero("francigena", "Siena")
	require.NoError(t, err)
	_, err = b.AddAttraction("francigena", "Siena", "Duomo", "")
	require.NoError(t, err)

	require.NoError(t, b.ClearTrail("francigena"))

	count, err := b.WaypointCount("francigena")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	zeros, err := b.Zeros("francigena")
	require.NoError(t, err)
	assert.Empty(t, zeros)

	attractions, err := b.Attractions("francigena")
	require.NoError(t, err)
	assert.Empty(t, attractions)
}
