package synthesis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atm-stream-generator/internal/models"
)

func TestDeriveMetricsTimeParts(t *testing.T) {
	// 2024-06-15 is a Saturday in ISO week 24.
	ts := time.Date(2024, 6, 15, 13, 45, 10, 0, time.UTC)
	customer := testCustomer("Gold", 2000, 60000)
	atm := testATM(1000, 9.0)

	tx := models.Transaction{Amount: 100, Status: StatusSuccess, ResponseTimeMs: 1000}
	deriveMetrics(&tx, ts, customer, atm)

	assert.Equal(t, 2024, tx.Year)
	assert.Equal(t, 6, tx.Month)
	assert.Equal(t, 15, tx.Day)
	assert.Equal(t, 13, tx.Hour)
	assert.Equal(t, "Saturday", tx.DayOfWeek)
	assert.True(t, tx.IsWeekend)
	assert.Equal(t, "Q2", tx.Quarter)
	assert.Equal(t, 24, tx.WeekOfYear)
	assert.Equal(t, 19889, tx.DaysSinceEpoch)
	assert.True(t, tx.BusinessHours)
	assert.True(t, tx.PeakHourTransaction)
}

func TestDeriveMetricsWeekdayBoundaries(t *testing.T) {
	tests := []struct {
		date        time.Time
		wantWeekend bool
	}{
		{time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC), false}, // Friday
		{time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC), true},  // Saturday
		{time.Date(2024, 6, 16, 10, 0, 0, 0, time.UTC), true},  // Sunday
		{time.Date(2024, 6, 17, 10, 0, 0, 0, time.UTC), false}, // Monday
	}

	for _, tt := range tests {
		tx := models.Transaction{}
		deriveMetrics(&tx, tt.date, testCustomer("Gold", 2000, 60000), testATM(1000, 9.0))
		assert.Equal(t, tt.wantWeekend, tx.IsWeekend, "%s", tt.date.Weekday())
	}
}

func TestDeriveMetricsRatios(t *testing.T) {
	ts := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	customer := testCustomer("Gold", 2000, 60000)
	atm := testATM(1000, 9.0)

	tx := models.Transaction{Amount: 500, Status: StatusSuccess, ResponseTimeMs: 2500}
	deriveMetrics(&tx, ts, customer, atm)

	assert.Equal(t, 0.25, tx.TransactionToBalanceRatio)
	assert.Equal(t, 25.0, tx.BalanceUtilizationPercent)
	assert.Equal(t, 120.0, tx.IncomeToTransactionRatio)
	assert.Equal(t, 5.0, tx.TransactionEfficiencyScore)
	// 60000 * 24 / 12 * 0.02
	assert.Equal(t, 2400.0, tx.CustomerLifetimeValue)
	assert.True(t, tx.TransactionVelocityRisk) // 500 > 150*3
	assert.False(t, tx.IsHighAmount)           // strictly greater than 500
}

func TestDeriveMetricsZeroAmount(t *testing.T) {
	ts := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	tx := models.Transaction{Amount: 0, Status: StatusSuccess, ResponseTimeMs: 1000}
	deriveMetrics(&tx, ts, testCustomer("Gold", 2000, 60000), testATM(1000, 9.0))

	assert.Zero(t, tx.TransactionToBalanceRatio)
	assert.Zero(t, tx.IncomeToTransactionRatio)
	assert.Zero(t, tx.BalanceUtilizationPercent)
}

func TestDeriveMetricsCustomerRiskScoreClamped(t *testing.T) {
	ts := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	high := testCustomer("Gold", 2000, 60000)
	high.CreditScore = 850 // 100 - 106 clamps to 0
	tx := models.Transaction{}
	deriveMetrics(&tx, ts, high, testATM(1000, 9.0))
	assert.Equal(t, 0, tx.CustomerRiskScore)

	low := testCustomer("Gold", 2000, 60000)
	low.CreditScore = 300 // 100 - 37 = 63
	tx = models.Transaction{}
	deriveMetrics(&tx, ts, low, testATM(1000, 9.0))
	assert.Equal(t, 63, tx.CustomerRiskScore)
}

func TestDeriveMetricsSegmentFlags(t *testing.T) {
	ts := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	gold := testCustomer("Gold", 2000, 60000)
	gold.DigitalBankingUser = false
	tx := models.Transaction{}
	deriveMetrics(&tx, ts, gold, testATM(1000, 9.0))
	assert.True(t, tx.IsHighValueCustomer)
	assert.True(t, tx.CrossSellingOpportunity)

	basic := testCustomer("Basic", 2000, 60000)
	basic.DigitalBankingUser = false
	tx = models.Transaction{}
	deriveMetrics(&tx, ts, basic, testATM(1000, 9.0))
	assert.False(t, tx.IsHighValueCustomer)
	assert.False(t, tx.CrossSellingOpportunity)
}

func TestDeriveMetricsATMPerformanceIndex(t *testing.T) {
	ts := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	atm := testATM(1000, 9.0)
	atm.UptimePercentage = 99.5

	tx := models.Transaction{}
	deriveMetrics(&tx, ts, testCustomer("Gold", 2000, 60000), atm)
	require.Equal(t, 89.55, tx.ATMPerformanceIndex)
}
