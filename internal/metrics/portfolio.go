package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
)

// PropertySnapshot is the derived per-property reporting row.
type PropertySnapshot struct {
	PropertyID    string
	PropertyName  string
	OccupancyRate float64
	VacancyRate   float64
	NOI           decimal.Decimal
	OER           decimal.Decimal
	CapRate       decimal.Decimal
}

// SnapshotProperty derives the reporting metrics for one property.
func SnapshotProperty(p model.Property) PropertySnapshot {
	noi := NOI(p.MonthlyIncome, p.MonthlyExpenses)
	return PropertySnapshot{
		PropertyID:    p.ID,
		PropertyName:  p.Name,
		OccupancyRate: OccupancyRate(p.TotalUnits, p.OccupiedUnits),
		VacancyRate:   VacancyRate(p.TotalUnits, p.OccupiedUnits),
		NOI:           noi,
		OER:           OER(p.MonthlyExpenses, p.MonthlyIncome),
		CapRate:       CapRate(noi, p.CurrentValue),
	}
}

// PortfolioMetrics aggregates the whole portfolio.
type PortfolioMetrics struct {
	TotalProperties      int
	TotalUnits           int
	OccupiedUnits        int
	OverallOccupancyRate float64
	TotalMonthlyIncome   decimal.Decimal
	TotalMonthlyExpenses decimal.Decimal
	PortfolioNOI         decimal.Decimal
	PortfolioValue       decimal.Decimal
}

// AggregatePortfolio sums units, income, expenses, and value across
// properties and derives the portfolio-level occupancy and NOI.
func AggregatePortfolio(properties []model.Property) PortfolioMetrics {
	m := PortfolioMetrics{
		TotalProperties:      len(properties),
		TotalMonthlyIncome:   decimal.Zero,
		TotalMonthlyExpenses: decimal.Zero,
		PortfolioValue:       decimal.Zero,
	}
	for _, p := range properties {
		m.TotalUnits += p.TotalUnits
		m.OccupiedUnits += p.OccupiedUnits
		m.TotalMonthlyIncome = m.TotalMonthlyIncome.Add(p.MonthlyIncome)
		m.TotalMonthlyExpenses = m.TotalMonthlyExpenses.Add(p.MonthlyExpenses)
		m.PortfolioValue = m.PortfolioValue.Add(p.CurrentValue)
	}
	m.OverallOccupancyRate = OccupancyRate(m.TotalUnits, m.OccupiedUnits)
	m.PortfolioNOI = NOI(m.TotalMonthlyIncome, m.TotalMonthlyExpenses)
	return m
}

// ResponseTimeHours is the elapsed time between a maintenance report and its
// completion, in hours.
func ResponseTimeHours(reported, completed time.Time) float64 {
	return completed.Sub(reported).Hours()
}

// NextPaymentDate returns the date one month after base, clamped to the last
// day of the month when the base day does not exist (e.g. Jan 31 -> Feb 28).
func NextPaymentDate(base time.Time) time.Time {
	next := base.AddDate(0, 1, 0)
	if next.Day() != base.Day() {
		// AddDate overflowed into the following month; back up to its
		// final day.
		next = time.Date(next.Year(), next.Month(), 1, 0, 0, 0, 0, next.Location()).AddDate(0, 0, -1)
	}
	return next
}
