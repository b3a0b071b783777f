// Package population builds the two in-memory populations the synthesizer
// samples from: ATM profiles and customer profiles. Populations are built
// once at startup and are immutable afterward.
package population

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"atm-stream-generator/internal/models"
)

// FakeProfileProvider supplies the cosmetic fields (names, addresses) of a
// profile. It carries no semantic weight in the model and can be swapped
// freely; the seeded gofakeit implementation lives in internal/fake.
type FakeProfileProvider interface {
	Name() string
	Address() string
	City() string
	State() string
	Country() string
	Company() string
}

// Factory generates profile populations from a seeded random source.
//
// Factory is deterministic with respect to the rng it was built with: given
// the same seed and the same call sequence, it produces identical
// populations (the fake provider must be seeded too).
type Factory struct {
	rng  *rand.Rand
	fake FakeProfileProvider
	now  time.Time
}

// NewFactory creates a Factory drawing randomness from rng and cosmetic
// fields from fake. Date fields are anchored to the current time.
func NewFactory(rng *rand.Rand, fake FakeProfileProvider) *Factory {
	return NewFactoryAt(rng, fake, time.Now())
}

// NewFactoryAt is NewFactory with an explicit anchor time, so that two
// factories built from the same seed produce bit-for-bit identical
// populations.
func NewFactoryAt(rng *rand.Rand, fake FakeProfileProvider, now time.Time) *Factory {
	return &Factory{rng: rng, fake: fake, now: now}
}

var (
	atmTypes                  = []string{"Drive-through", "Walk-up", "Indoor", "Mall"}
	regions                   = []string{"North", "South", "East", "West", "Central"}
	dailyTransactionLimits    = []int{500, 1000, 1500, 2000, 2500}
	ageGroups                 = []string{"18-25", "26-35", "36-45", "46-55", "56-65", "65+"}
	segments                  = []string{"Premium", "Gold", "Silver", "Basic"}
	accountTypes              = []string{"Savings", "Checking", "Business", "Student"}
	overdraftLimits           = []int{0, 100, 250, 500, 1000}
	preferredTransactionTimes = []string{"Morning", "Afternoon", "Evening", "Night"}
)

// incomeRanges maps an age group to the uniform range its base income is
// drawn from.
var incomeRanges = map[string][2]int{
	"18-25": {25000, 45000},
	"26-35": {35000, 75000},
	"36-45": {45000, 95000},
	"46-55": {50000, 120000},
	"56-65": {45000, 100000},
	"65+":   {30000, 60000},
}

// segmentMultipliers maps a customer segment to the uniform range its income
// multiplier is drawn from.
var segmentMultipliers = map[string][2]float64{
	"Premium": {1.5, 3.0},
	"Gold":    {1.2, 2.0},
	"Silver":  {0.9, 1.3},
	"Basic":   {0.6, 1.0},
}

// BuildATMs generates count ATM profiles. Each field is drawn independently
// from its domain; no cross-field correlation.
func (f *Factory) BuildATMs(count int) []models.ATMProfile {
	atms := make([]models.ATMProfile, 0, count)
	for i := 1; i <= count; i++ {
		atms = append(atms, models.ATMProfile{
			ID:                    fmt.Sprintf("ATM_%04d", i),
			Location:              f.fake.Address(),
			City:                  f.fake.City(),
			State:                 f.fake.State(),
			Country:               f.fake.Country(),
			BankName:              f.fake.Company(),
			ATMType:               choice(f.rng, atmTypes),
			Region:                choice(f.rng, regions),
			CashCapacity:          f.randomRange(50000, 200000),
			DailyTransactionLimit: choice(f.rng, dailyTransactionLimits),
			InstallationDate:      f.now.AddDate(0, 0, -f.randomRange(365, 3650)),
			MaintenanceScore:      round1(f.uniform(7.0, 10.0)),
			UptimePercentage:      round2(f.uniform(95.0, 99.9)),
			AvgQueueTimeMinutes:   round1(f.uniform(1.0, 5.0)),
		})
	}
	return atms
}

// BuildCustomers generates count customer profiles with internally
// consistent financial metrics: income derives from age group and segment,
// and the balance stays within 30% of annual income (floor 500).
func (f *Factory) BuildCustomers(count int) []models.CustomerProfile {
	customers := make([]models.CustomerProfile, 0, count)
	for i := 0; i < count; i++ {
		ageGroup := choice(f.rng, ageGroups)
		segment := choice(f.rng, segments)

		incomeRange := incomeRanges[ageGroup]
		multiplierRange := segmentMultipliers[segment]
		baseIncome := f.randomRange(incomeRange[0], incomeRange[1])
		multiplier := f.uniform(multiplierRange[0], multiplierRange[1])
		annualIncome := int(float64(baseIncome) * multiplier)

		balanceCap := math.Max(500, float64(annualIncome)*0.3)
		customers = append(customers, models.CustomerProfile{
			ID:                       fmt.Sprintf("CUST_%06d", i),
			AccountNumber:            fmt.Sprintf("ACC_%d", f.randomRange(1000000000, 9999999999)),
			Name:                     f.fake.Name(),
			AgeGroup:                 ageGroup,
			Segment:                  segment,
			AccountType:              choice(f.rng, accountTypes),
			RegistrationDate:         f.now.AddDate(0, 0, -f.randomRange(0, 1825)),
			City:                     f.fake.City(),
			State:                    f.fake.State(),
			AnnualIncome:             annualIncome,
			AccountBalance:           round2(f.uniform(500, balanceCap)),
			CreditScore:              f.randomRange(300, 850),
			MonthlyTransactions:      f.randomRange(5, 50),
			AvgTransactionAmount:     round2(f.uniform(50, 500)),
			AccountAgeMonths:         f.randomRange(1, 60),
			OverdraftLimit:           choice(f.rng, overdraftLimits),
			LoyaltyPoints:            f.randomRange(0, 10000),
			DigitalBankingUser:       f.rng.Intn(2) == 0,
			PreferredTransactionTime: choice(f.rng, preferredTransactionTimes),
		})
	}
	return customers
}

// randomRange returns a random int in [min, max].
func (f *Factory) randomRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + f.rng.Intn(max-min+1)
}

// uniform returns a random float64 in [min, max).
func (f *Factory) uniform(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + f.rng.Float64()*(max-min)
}

func choice[T any](rng *rand.Rand, options []T) T {
	return options[rng.Intn(len(options))]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
