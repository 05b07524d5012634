package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
)

func TestStatus_HigherBetter(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    model.Status
	}{
		{"on target", 100, 100, model.StatusGreen},
		{"above target", 120, 100, model.StatusGreen},
		{"at 85 percent", 85, 100, model.StatusYellow},
		{"at 80 percent boundary", 80, 100, model.StatusYellow},
		{"at 70 percent", 70, 100, model.StatusRed},
		{"zero target counts as met", 5, 0, model.StatusGreen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.current, tt.target, true))
		})
	}
}

func TestStatus_LowerBetter(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    model.Status
	}{
		{"under target", 40, 50, model.StatusGreen},
		{"on target", 50, 50, model.StatusGreen},
		{"ten percent over", 55, 50, model.StatusYellow},
		{"twenty percent over boundary", 60, 50, model.StatusYellow},
		{"thirty percent over", 65, 50, model.StatusRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.current, tt.target, false))
		})
	}
}

func history(values ...float64) []model.ValuePoint {
	points := make([]model.ValuePoint, len(values))
	for i, v := range values {
		points[i] = model.ValuePoint{Value: v}
	}
	return points
}

func TestTrendOf(t *testing.T) {
	tests := []struct {
		name   string
		points []model.ValuePoint
		want   model.Trend
	}{
		{"empty", nil, model.TrendStable},
		{"single point", history(100), model.TrendStable},
		{"one percent change", history(100, 101), model.TrendStable},
		{"five percent up", history(100, 105), model.TrendUp},
		{"ten percent down", history(100, 90), model.TrendDown},
		{"only last two points count", history(50, 100, 105), model.TrendUp},
		{"previous zero", history(0, 10), model.TrendUp},
		{"both zero", history(0, 0), model.TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrendOf(tt.points))
		})
	}
}

func TestPaymentStatusOf(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, 0, -10)
	old := now.AddDate(0, 0, -45)

	tests := []struct {
		name        string
		lastPayment *time.Time
		balance     string
		want        model.PaymentStatus
	}{
		{"no balance is paid", &old, "0", model.PaymentPaid},
		{"balance but recent payment", &recent, "500.00", model.PaymentDue},
		{"balance and stale payment", &old, "500.00", model.PaymentOverdue},
		{"balance and never paid", nil, "500.00", model.PaymentOverdue},
		{"never paid but nothing owed", nil, "0", model.PaymentPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaymentStatusOf(tt.lastPayment, decimal.RequireFromString(tt.balance), now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutstandingBalance(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	rent := decimal.RequireFromString("1000.00")

	// Lease started in January: Jan + Feb + Mar expected = 3000.
	leaseStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	got := OutstandingBalance(rent, leaseStart, now, decimal.RequireFromString("2000.00"))
	assert.True(t, got.Equal(decimal.RequireFromString("1000.00")), "got %s", got)

	// Overpayment floors at zero.
	got = OutstandingBalance(rent, leaseStart, now, decimal.RequireFromString("5000.00"))
	assert.True(t, got.IsZero())
}
