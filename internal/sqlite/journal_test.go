package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailforge/camino/pkg/types"
)

func TestPlans(t *testing.T) {
	b := newTestBackend(t)

	// Inserted out of date order; listing sorts by date.
	_, err := b.AddPlan("francigena", types.Plan{
		Date: "2026-09-02", StopCity: "Monteriggioni",
		Distance: 20.5, Gain: 450, Loss: 380, Slope: 4.1,
		Duration: "06:30", StopType: "hike",
	})
	require.NoError(t, err)
	_, err = b.AddPlan("francigena", types.Plan{
		Date: "2026-09-01", StopCity: "Siena",
		Distance: 0, StopType: "start",
	})
	require.NoError(t, err)

	plans, err := b.Plans("francigena")
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Siena", plans[0].StopCity)
	assert.Equal(t, "Monteriggioni", plans[1].StopCity)
	assert.Equal(t, 20.5, plans[1].Distance)
	assert.Equal(t, "06:30", plans[1].Duration)

	_, err = b.AddPlan("francigena", types.Plan{StopCity: "Siena"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestMileages(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.AddMileage("francigena", types.Mileage{
		Date: "2026-09-01", StopCity: "Monteriggioni", StopType: "hike",
		StartTime: "07:15", StopTime: "14:40",
		ActualDistance: 21.3, ActualGain: 470, ActualLoss: 390, ActualSlope: 4.2,
		ActualDuration: "07:25", ActualMoving: "06:10", ActualPace: "17:22",
		HighTemp: "28", Pilgrims: 14, Note: "hot afternoon",
	})
	require.NoError(t, err)
	_, err = b.AddMileage("francigena", types.Mileage{
		Date: "2026-09-02", StopCity: "Monteriggioni", StopType: "zero",
		ZeroDistance: 3.5,
	})
	require.NoError(t, err)

	mileages, err := b.Mileages("francigena")
	require.NoError(t, err)
	require.Len(t, mileages, 2)

	first := mileages[0]
	assert.Equal(t, "2026-09-01", first.Date)
	assert.Equal(t, 21.3, first.ActualDistance)
	assert.Equal(t, "07:15", first.StartTime)
	assert.Equal(t, "17:22", first.ActualPace)
	assert.Equal(t, 14, first.Pilgrims)
	assert.Equal(t, "hot afternoon", first.Note)

	second := mileages[1]
	assert.Equal(t, "zero", second.StopType)
	assert.Equal(t, 3.5, second.ZeroDistance)
	assert.Equal(t, "", second.StartTime)

	_, err = b.AddMileage("francigena", types.Mileage{Date: "2026-09-03"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestExpenses(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.AddExpense("francigena", types.Expense{
		Date: "2026-09-01", StopCity: "Monteriggioni", StopType: "hike",
		Payment: "Visa", PaymentType: "card",
		Category: "Lodging", ExpenseType: "hotel", Vendor: "Albergo Casalta",
		LocalAmount: 85, Currency: "EUR", USDAmount: 91.8,
	})
	require.NoError(t, err)
	_, err = b.AddExpense("francigena", types.Expense{
		Date: "2026-09-02", StopCity: "Monteriggioni", StopType: "hike",
		Payment: "Cash EUR", PaymentType: "cash",
		Category: "Food", ExpenseType: "dinner",
		LocalAmount: 22, Currency: "EUR", USDAmount: 23.8,
	})
	require.NoError(t, err)

	expenses, err := b.Expenses("francigena")
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Lodging", expenses[0].Category)
	assert.Equal(t, "Albergo Casalta", expenses[0].Vendor)
	assert.Equal(t, 85.0, expenses[0].LocalAmount)
	assert.Equal(t, "Food", expenses[1].Category)
	assert.Equal(t, "", expenses[1].Vendor)

	_, err = b.AddExpense("francigena", types.Expense{Date: "2026-09-02"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}
