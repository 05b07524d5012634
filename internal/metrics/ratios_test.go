package metrics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 75.0, OccupancyRate(8, 6))
	assert.Equal(t, 0.0, OccupancyRate(0, 0), "zero units must not divide by zero")
	assert.Equal(t, 100.0, OccupancyRate(4, 4))
}

func TestVacancyRate(t *testing.T) {
	assert.Equal(t, 25.0, VacancyRate(8, 6))
	assert.Equal(t, 100.0, VacancyRate(0, 0))
}

func TestNOI(t *testing.T) {
	got := NOI(dec("5000.00"), dec("1800.00"))
	assert.True(t, got.Equal(dec("3200.00")), "got %s", got)
}

func TestOER(t *testing.T) {
	got := OER(dec("1800.00"), dec("5000.00"))
	assert.True(t, got.Equal(dec("36")), "got %s", got)

	assert.True(t, OER(dec("1800.00"), decimal.Zero).IsZero(), "zero income yields zero")
}

func TestCapRate(t *testing.T) {
	// Monthly NOI 1000 -> annual 12000 against a 240000 property = 5%.
	got := CapRate(dec("1000.00"), dec("240000.00"))
	assert.True(t, got.Equal(dec("5")), "got %s", got)

	assert.True(t, CapRate(dec("1000.00"), decimal.Zero).IsZero(), "zero value yields zero")
}

func TestCollectionRate(t *testing.T) {
	got := CollectionRate(dec("900.00"), dec("1000.00"))
	assert.True(t, got.Equal(dec("90")), "got %s", got)

	got = CollectionRate(decimal.Zero, decimal.Zero)
	assert.True(t, got.Equal(dec("100")), "nothing owed counts as fully collected")
}

func TestCashflowVariance(t *testing.T) {
	variance, percent := CashflowVariance(dec("1000.00"), dec("1250.00"))
	assert.True(t, variance.Equal(dec("250.00")), "got %s", variance)
	assert.True(t, percent.Equal(dec("25")), "got %s", percent)

	variance, percent = CashflowVariance(decimal.Zero, dec("300.00"))
	assert.True(t, variance.Equal(dec("300.00")))
	assert.True(t, percent.IsZero(), "no projection means no percentage")
}
