// Package metrics holds the pure status and ratio calculators used by the
// reporting views. Nothing here reads or writes storage.
package metrics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
)

// Status derives a traffic-light status from a current value and a target.
// The direction is explicit per metric: for higher-is-better metrics GREEN
// means >= 100% of target and YELLOW >= 80%; for lower-is-better metrics
// (expense ratios, vacancy) GREEN means <= 100% and YELLOW <= 120%.
// A zero target counts as met.
func Status(current, target float64, higherBetter bool) model.Status {
	if target == 0 {
		return model.StatusGreen
	}
	percentOfTarget := current / target * 100

	if higherBetter {
		switch {
		case percentOfTarget >= 100:
			return model.StatusGreen
		case percentOfTarget >= 80:
			return model.StatusYellow
		default:
			return model.StatusRed
		}
	}

	switch {
	case percentOfTarget <= 100:
		return model.StatusGreen
	case percentOfTarget <= 120:
		return model.StatusYellow
	default:
		return model.StatusRed
	}
}

// TrendOf compares the last two history points. Changes under 2% either way
// count as stable. Fewer than two points is stable by definition.
func TrendOf(history []model.ValuePoint) model.Trend {
	if len(history) < 2 {
		return model.TrendStable
	}

	latest := history[len(history)-1].Value
	previous := history[len(history)-2].Value

	if previous == 0 {
		if latest == 0 {
			return model.TrendStable
		}
		if latest > 0 {
			return model.TrendUp
		}
		return model.TrendDown
	}

	percentChange := (latest - previous) / previous * 100
	if math.Abs(percentChange) < 2 {
		return model.TrendStable
	}
	if percentChange > 0 {
		return model.TrendUp
	}
	return model.TrendDown
}

// overdueWindowDays is how long after the last payment an outstanding balance
// is tolerated before the tenant counts as overdue.
const overdueWindowDays = 30

// PaymentStatusOf derives a tenant's standing. A zero outstanding balance is
// paid regardless of dates. With a balance owing, a tenant who never paid or
// whose last payment is older than the 30-day window is overdue; inside the
// window they are due.
func PaymentStatusOf(lastPaymentDate *time.Time, outstandingBalance decimal.Decimal, now time.Time) model.PaymentStatus {
	if outstandingBalance.LessThanOrEqual(decimal.Zero) {
		return model.PaymentPaid
	}
	if lastPaymentDate == nil {
		return model.PaymentOverdue
	}
	daysSincePayment := int(now.Sub(*lastPaymentDate).Hours() / 24)
	if daysSincePayment > overdueWindowDays {
		return model.PaymentOverdue
	}
	return model.PaymentDue
}

// OutstandingBalance derives what a tenant owes from months elapsed since
// lease start times the monthly rent, minus everything paid, floored at zero.
func OutstandingBalance(monthlyRent decimal.Decimal, leaseStart, now time.Time, totalPaid decimal.Decimal) decimal.Decimal {
	monthsDiff := (now.Year()-leaseStart.Year())*12 + int(now.Month()) - int(leaseStart.Month())
	expectedPayments := monthsDiff + 1
	if expectedPayments < 0 {
		expectedPayments = 0
	}

	totalExpected := monthlyRent.Mul(decimal.NewFromInt(int64(expectedPayments)))
	balance := totalExpected.Sub(totalPaid)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}
