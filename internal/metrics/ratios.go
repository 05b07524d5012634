package metrics

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// OccupancyRate returns occupied units as a percentage of total units.
// Zero total units yields zero, not a division error.
func OccupancyRate(totalUnits, occupiedUnits int) float64 {
	if totalUnits == 0 {
		return 0
	}
	return float64(occupiedUnits) / float64(totalUnits) * 100
}

// VacancyRate is the complement of the occupancy rate.
func VacancyRate(totalUnits, occupiedUnits int) float64 {
	return 100 - OccupancyRate(totalUnits, occupiedUnits)
}

// NOI is net operating income: income minus operating expenses, at whatever
// period granularity the caller supplies.
func NOI(income, expenses decimal.Decimal) decimal.Decimal {
	return income.Sub(expenses)
}

// OER is the operating expense ratio as a percentage of income. Zero income
// yields zero.
func OER(expenses, income decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return expenses.Div(income).Mul(oneHundred)
}

// CapRate annualizes a monthly NOI against the property value, as a
// percentage. Zero property value yields zero.
func CapRate(monthlyNOI, propertyValue decimal.Decimal) decimal.Decimal {
	if propertyValue.IsZero() {
		return decimal.Zero
	}
	annualNOI := monthlyNOI.Mul(decimal.NewFromInt(12))
	return annualNOI.Div(propertyValue).Mul(oneHundred)
}

// CollectionRate is rent collected as a percentage of rent due. Nothing owed
// counts as fully collected.
func CollectionRate(collected, due decimal.Decimal) decimal.Decimal {
	if due.IsZero() {
		return oneHundred
	}
	return collected.Div(due).Mul(oneHundred)
}

// CashflowVariance returns actual minus projected and the variance as a
// percentage of the projection (zero when nothing was projected).
func CashflowVariance(projected, actual decimal.Decimal) (variance, variancePercent decimal.Decimal) {
	variance = actual.Sub(projected)
	if projected.IsZero() {
		return variance, decimal.Zero
	}
	return variance, variance.Div(projected).Mul(oneHundred)
}
