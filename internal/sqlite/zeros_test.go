package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailforge/camino/pkg/types"
)

func TestZeros(t *testing.T) {
	b := newTestBackend(t)

	id1, err := b.AddZero("francigena", "Siena")
	require.NoError(t, err)
	id2, err := b.AddZero("francigena", "Lucca")
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	zeros, err := b.Zeros("francigena")
	require.NoError(t, err)
	require.Len(t, zeros, 2)
	assert.Equal(t, "Siena", zeros[0].City)
	assert.Equal(t, "Lucca", zeros[1].City)
}

func TestZerosAreScopedByTrail(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.AddZero("francigena", "Siena")
	require.NoError(t, err)
	_, err = b.AddZero("norte", "Bilbao")
	require.NoError(t, err)

	zeros, err := b.Zeros("norte")
	require.NoError(t, err)
	require.Len(t, zeros, 1)
	assert.Equal(t, "Bilbao", zeros[0].City)
}

func TestUpdateZero(t *testing.T) {
	b := newTestBackend(t)

	id, err := b.AddZero("francigena", "Siena")
	require.NoError(t, err)

	require.NoError(t, b.UpdateZero("francigena", id, "Lucca"))

	zeros, err := b.Zeros("francigena")
	require.NoError(t, err)
	require.Len(t, zeros, 1)
	assert.Equal(t, "Lucca", zeros[0].City)

	assert.ErrorIs(t, b.UpdateZero("francigena", 999, "Roma"), types.ErrNotFound)
	assert.ErrorIs(t, b.UpdateZero("francigena", 0, "Roma"), types.ErrInvalidID)
	assert.ErrorIs(t, b.UpdateZero("francigena", id, ""), types.ErrInvalidData)
}

func TestAddZeroValidation(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.AddZero("francigena", "")
	assert.ErrorIs(t, err, types.ErrInvalidData)

	_, err = b.AddZero("Bad Trail", "Siena")
	assert.ErrorIs(t, err, types.ErrInvalidTrailName)
}
