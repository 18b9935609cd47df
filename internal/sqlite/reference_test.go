package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailforge/camino/pkg/types"
)

func TestCategories(t *testing.T) {
	b := newTestBackend(t)

	id1, err := b.AddCategory("Lodging", "fixed")
	require.NoError(t, err)
	id2, err := b.AddCategory("Food", "")
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	categories, err := b.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, "Lodging", categories[0].Name)
	assert.Equal(t, "fixed", categories[0].Type)
	assert.True(t, categories[0].Enabled)
	assert.Equal(t, "Food", categories[1].Name)
	assert.Equal(t, "", categories[1].Type)
}

func TestAddCategoryRequiresName(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.AddCategory("", "fixed")
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestDisableKeepsCategoryListed(t *testing.T) {
	b := newTestBackend(t)

	id, err := b.AddCategory("Lodging", "")
	require.NoError(t, err)
	require.NoError(t, b.SetCategoryEnabled(id, false))

	categories, err := b.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.False(t, categories[0].Enabled)

	// Re-enable round-trips.
	require.NoError(t, b.SetCategoryEnabled(id, true))
	categories, err = b.Categories()
	require.NoError(t, err)
	assert.True(t, categories[0].Enabled)
}

func TestSetEnabledUnknownID(t *testing.T) {
	b := newTestBackend(t)

	assert.ErrorIs(t, b.SetCategoryEnabled(999, false), types.ErrNotFound)
	assert.ErrorIs(t, b.SetCurrencyEnabled(999, false), types.ErrNotFound)
	assert.ErrorIs(t, b.SetPaymentEnabled(999, false), types.ErrNotFound)

	assert.ErrorIs(t, b.SetCategoryEnabled(0, false), types.ErrInvalidID)
	assert.ErrorIs(t, b.SetCategoryEnabled(-1, false), types.ErrInvalidID)
}

func TestCurrencies(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.AddCurrency("EUR", 1.08)
	require.NoError(t, err)
	id, err := b.AddCurrency("GBP", 1.27)
	require.NoError(t, err)

	require.NoError(t, b.SetCurrencyEnabled(id, false))

	currencies, err := b.Currencies()
	require.NoError(t, err)
	require.Len(t, currencies, 2)
	assert.Equal(t, "EUR", currencies[0].Name)
	assert.Equal(t, 1.08, currencies[0].ExchangeRate)
	assert.True(t, currencies[0].Enabled)
	assert.Equal(t, "GBP", currencies[1].Name)
	assert.False(t, currencies[1].Enabled)
}

func TestPayments(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.AddPayment("Visa", "card")
	require.NoError(t, err)
	_, err = b.AddPayment("Cash EUR", "cash")
	require.NoError(t, err)

	payments, err := b.Payments()
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "Visa", payments[0].Name)
	assert.Equal(t, "card", payments[0].Type)
	assert.Equal(t, "Cash EUR", payments[1].Name)

	_, err = b.AddPayment("Visa", "")
	assert.ErrorIs(t, err, types.ErrInvalidData)
}
