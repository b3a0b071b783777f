package population

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFake returns fixed cosmetic fields; profile semantics never depend on
// them.
type stubFake struct{}

func (stubFake) Name() string    { return "Jane Doe" }
func (stubFake) Address() string { return "1 Main St" }
func (stubFake) City() string    { return "Springfield" }
func (stubFake) State() string   { return "Illinois" }
func (stubFake) Country() string { return "United States" }
func (stubFake) Company() string { return "First National" }

func newTestFactory(seed int64) *Factory {
	anchor := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	return NewFactoryAt(rand.New(rand.NewSource(seed)), stubFake{}, anchor)
}

func TestBuildATMsFieldRanges(t *testing.T) {
	atms := newTestFactory(1).BuildATMs(200)
	require.Len(t, atms, 200)

	validLimits := map[int]bool{500: true, 1000: true, 1500: true, 2000: true, 2500: true}
	validTypes := map[string]bool{"Drive-through": true, "Walk-up": true, "Indoor": true, "Mall": true}
	validRegions := map[string]bool{"North": true, "South": true, "East": true, "West": true, "Central": true}

	for _, atm := range atms {
		assert.GreaterOrEqual(t, atm.CashCapacity, 50000)
		assert.LessOrEqual(t, atm.CashCapacity, 200000)
		assert.GreaterOrEqual(t, atm.MaintenanceScore, 7.0)
		assert.LessOrEqual(t, atm.MaintenanceScore, 10.0)
		assert.GreaterOrEqual(t, atm.UptimePercentage, 95.0)
		assert.LessOrEqual(t, atm.UptimePercentage, 99.9)
		assert.GreaterOrEqual(t, atm.AvgQueueTimeMinutes, 1.0)
		assert.LessOrEqual(t, atm.AvgQueueTimeMinutes, 5.0)
		assert.True(t, validLimits[atm.DailyTransactionLimit], "limit %d", atm.DailyTransactionLimit)
		assert.True(t, validTypes[atm.ATMType])
		assert.True(t, validRegions[atm.Region])
		assert.True(t, atm.InstallationDate.Before(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)))
	}
}

func TestBuildATMsIDsAreSequential(t *testing.T) {
	atms := newTestFactory(2).BuildATMs(3)
	require.Equal(t, "ATM_0001", atms[0].ID)
	require.Equal(t, "ATM_0002", atms[1].ID)
	require.Equal(t, "ATM_0003", atms[2].ID)
}

func TestBuildCustomersFinancialInvariants(t *testing.T) {
	customers := newTestFactory(3).BuildCustomers(500)
	require.Len(t, customers, 500)

	for _, c := range customers {
		assert.Greater(t, c.AnnualIncome, 0)
		assert.GreaterOrEqual(t, c.AccountBalance, 500.0)
		balanceCap := float64(c.AnnualIncome) * 0.3
		if balanceCap < 500 {
			balanceCap = 500
		}
		assert.LessOrEqual(t, c.AccountBalance, balanceCap+0.01)
		assert.GreaterOrEqual(t, c.CreditScore, 300)
		assert.LessOrEqual(t, c.CreditScore, 850)
		assert.GreaterOrEqual(t, c.MonthlyTransactions, 5)
		assert.LessOrEqual(t, c.MonthlyTransactions, 50)
		assert.GreaterOrEqual(t, c.AccountAgeMonths, 1)
		assert.LessOrEqual(t, c.AccountAgeMonths, 60)
	}
}

func TestBuildCustomersIncomeCorrelation(t *testing.T) {
	// Income must stay within base range x multiplier range for the drawn
	// age group and segment.
	customers := newTestFactory(4).BuildCustomers(500)

	for _, c := range customers {
		incomeRange, ok := incomeRanges[c.AgeGroup]
		require.True(t, ok, "unknown age group %q", c.AgeGroup)
		multRange, ok := segmentMultipliers[c.Segment]
		require.True(t, ok, "unknown segment %q", c.Segment)

		min := float64(incomeRange[0]) * multRange[0]
		max := float64(incomeRange[1]) * multRange[1]
		assert.GreaterOrEqual(t, float64(c.AnnualIncome), min-1)
		assert.LessOrEqual(t, float64(c.AnnualIncome), max)
	}
}

func TestBuildCustomersCategoricalDomains(t *testing.T) {
	customers := newTestFactory(5).BuildCustomers(200)

	validOverdrafts := map[int]bool{0: true, 100: true, 250: true, 500: true, 1000: true}
	validTimes := map[string]bool{"Morning": true, "Afternoon": true, "Evening": true, "Night": true}

	for _, c := range customers {
		assert.True(t, validOverdrafts[c.OverdraftLimit], "overdraft %d", c.OverdraftLimit)
		assert.True(t, validTimes[c.PreferredTransactionTime])
		assert.GreaterOrEqual(t, c.LoyaltyPoints, 0)
		assert.LessOrEqual(t, c.LoyaltyPoints, 10000)
		assert.Regexp(t, `^ACC_\d{10}$`, c.AccountNumber)
	}
}

func TestBuildDeterministicForSameSeed(t *testing.T) {
	first := newTestFactory(42)
	second := newTestFactory(42)

	require.Equal(t, first.BuildATMs(50), second.BuildATMs(50))
	require.Equal(t, first.BuildCustomers(50), second.BuildCustomers(50))
}
