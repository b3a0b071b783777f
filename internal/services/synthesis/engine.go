// Package synthesis derives complete ATM transaction records from the two
// generated populations. Each record is a pure function of the population
// snapshot, the random draws, and the reference time; no state is kept
// between calls.
package synthesis

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"atm-stream-generator/internal/models"

	"github.com/google/uuid"
)

const (
	StatusSuccess   = "SUCCESS"
	StatusFailed    = "FAILED"
	StatusTimeout   = "TIMEOUT"
	StatusCancelled = "CANCELLED"
)

const (
	TypeWithdrawal     = "WITHDRAWAL"
	TypeDeposit        = "DEPOSIT"
	TypeBalanceInquiry = "BALANCE_INQUIRY"
	TypeTransfer       = "TRANSFER"
	TypePinChange      = "PIN_CHANGE"
)

var transactionTypes = []string{
	TypeWithdrawal,
	TypeDeposit,
	TypeBalanceInquiry,
	TypeTransfer,
	TypePinChange,
}

// withdrawalAmounts lists the candidate withdrawal amounts per segment.
var withdrawalAmounts = map[string][]float64{
	"Premium": {50, 100, 200, 500, 1000, 1500},
	"Gold":    {20, 50, 100, 200, 500, 1000},
	"Silver":  {20, 40, 80, 100, 200, 400},
	"Basic":   {20, 40, 60, 100, 200},
}

var defaultWithdrawalAmounts = []float64{20, 40, 60, 100}

// transferRanges lists the uniform transfer amount range per segment.
var transferRanges = map[string][2]float64{
	"Premium": {500, 5000},
	"Gold":    {200, 3000},
	"Silver":  {100, 2000},
	"Basic":   {50, 1000},
}

var defaultTransferRange = [2]float64{50, 1000}

// withdrawalFees lists the not-own-bank fee per segment; Premium customers
// get fee waivers.
var withdrawalFees = map[string]float64{
	"Premium": 0,
	"Gold":    1.50,
	"Silver":  2.50,
	"Basic":   3.50,
}

const defaultWithdrawalFee = 2.50

// Engine synthesizes transactions from a shared random source. The mutex
// lets concurrent callers (the stream loop and the ops API) share one rng
// without breaking the deterministic draw sequence.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewEngine creates an Engine drawing randomness from rng.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng, now: time.Now}
}

// Synthesize produces one transaction record from the given populations.
func (e *Engine) Synthesize(atms []models.ATMProfile, customers []models.CustomerProfile) models.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return SynthesizeAt(atms, customers, e.rng, e.now())
}

// SynthesizeAt derives one transaction record by sampling one customer and
// one ATM from the populations and applying the type- and segment-specific
// amount, status, and fee models.
//
// SynthesizeAt is deterministic with respect to the state of rng and the
// value of now: the same draws against the same populations always produce
// the same record. The transaction id is a v4 UUID drawn from rng rather
// than crypto/rand so that seeded runs reproduce ids too.
func SynthesizeAt(atms []models.ATMProfile, customers []models.CustomerProfile, rng *rand.Rand, now time.Time) models.Transaction {
	customer := customers[rng.Intn(len(customers))]
	atm := atms[rng.Intn(len(atms))]
	transactionType := transactionTypes[rng.Intn(len(transactionTypes))]

	// Spread timestamps over the last two years, with a fresh time of day.
	daysBack := rng.Intn(731)
	base := now.AddDate(0, 0, -daysBack)
	ts := time.Date(base.Year(), base.Month(), base.Day(),
		rng.Intn(24), rng.Intn(60), rng.Intn(60), 0, base.Location())

	amount := sampleAmount(rng, transactionType, customer, atm)
	status := sampleStatus(rng, atm.MaintenanceScore)
	fee := sampleFee(rng, transactionType, status, customer.Segment)

	distanceFromHome := round1(uniform(rng, 0.5, 25.0))
	isFrequentLocation := distanceFromHome < 5.0 && rng.Float64() < 0.7

	var responseTimeMs int
	if status != StatusTimeout {
		responseTimeMs = 500 + rng.Intn(4501)
	} else {
		responseTimeMs = 10000 + rng.Intn(20001)
	}

	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// *rand.Rand never fails to read; fall back just in case.
		id = uuid.New()
	}

	tx := models.Transaction{
		TransactionID:        id.String(),
		TransactionTimestamp: ts.Format("2006-01-02T15:04:05"),
		TransactionDate:      ts.Format("2006-01-02"),
		TransactionTime:      ts.Format("15:04:05"),
		Amount:               amount,
		TransactionFee:       fee,
		Status:               status,
		ResponseTimeMs:       responseTimeMs,
		CustomerID:           customer.ID,
		AccountNumber:        customer.AccountNumber,
		ATMID:                atm.ID,
		TransactionType:      transactionType,

		CustomerName:             customer.Name,
		AgeGroup:                 customer.AgeGroup,
		CustomerSegment:          customer.Segment,
		AccountType:              customer.AccountType,
		CustomerCity:             customer.City,
		CustomerState:            customer.State,
		AnnualIncome:             customer.AnnualIncome,
		AccountBalance:           customer.AccountBalance,
		CreditScore:              customer.CreditScore,
		MonthlyTransactions:      customer.MonthlyTransactions,
		AvgTransactionAmount:     customer.AvgTransactionAmount,
		AccountAgeMonths:         customer.AccountAgeMonths,
		OverdraftLimit:           customer.OverdraftLimit,
		LoyaltyPoints:            customer.LoyaltyPoints,
		DigitalBankingUser:       customer.DigitalBankingUser,
		PreferredTransactionTime: customer.PreferredTransactionTime,

		ATMLocation:           atm.Location,
		ATMCity:               atm.City,
		ATMState:              atm.State,
		ATMCountry:            atm.Country,
		BankName:              atm.BankName,
		ATMType:               atm.ATMType,
		Region:                atm.Region,
		ATMCashCapacity:       atm.CashCapacity,
		DailyTransactionLimit: atm.DailyTransactionLimit,
		MaintenanceScore:      atm.MaintenanceScore,
		UptimePercentage:      atm.UptimePercentage,
		AvgQueueTimeMinutes:   atm.AvgQueueTimeMinutes,

		DistanceFromHomeKm: distanceFromHome,
		IsFrequentLocation: isFrequentLocation,

		CreatedAt: now.Format("2006-01-02T15:04:05"),
	}

	deriveMetrics(&tx, ts, customer, atm)
	return tx
}

// sampleAmount applies the type-specific amount model. Every branch has a
// fallback, so an amount is always produced.
func sampleAmount(rng *rand.Rand, transactionType string, customer models.CustomerProfile, atm models.ATMProfile) float64 {
	switch transactionType {
	case TypeWithdrawal:
		candidates, ok := withdrawalAmounts[customer.Segment]
		if !ok {
			candidates = defaultWithdrawalAmounts
		}
		maxAllowed := math.Min(float64(atm.DailyTransactionLimit), customer.AccountBalance*0.3)
		valid := make([]float64, 0, len(candidates))
		for _, amt := range candidates {
			if amt <= maxAllowed {
				valid = append(valid, amt)
			}
		}
		if len(valid) == 0 {
			return 20
		}
		return valid[rng.Intn(len(valid))]

	case TypeDeposit:
		incomeFactor := float64(customer.AnnualIncome) / 50000
		base := uniform(rng, 50, 1000) * incomeFactor
		return round2(math.Min(base, 5000))

	case TypeTransfer:
		r, ok := transferRanges[customer.Segment]
		if !ok {
			r = defaultTransferRange
		}
		return round2(uniform(rng, r[0], r[1]))

	default:
		// BALANCE_INQUIRY, PIN_CHANGE
		return 0
	}
}

// sampleStatus draws a status by relative weight. ATMs with a maintenance
// score below 8.0 fail more often; the override keeps the literal weights
// from the base table for TIMEOUT and CANCELLED.
func sampleStatus(rng *rand.Rand, maintenanceScore float64) string {
	statuses := []string{StatusSuccess, StatusFailed, StatusTimeout, StatusCancelled}
	weights := []float64{0.85, 0.10, 0.03, 0.02}
	if maintenanceScore < 8.0 {
		weights[0] = 0.75
		weights[1] = 0.20
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return statuses[i]
		}
	}
	return statuses[len(statuses)-1]
}

// sampleFee charges a segment-dependent fee only on successful withdrawals
// at another bank's ATM.
func sampleFee(rng *rand.Rand, transactionType, status, segment string) float64 {
	if transactionType != TypeWithdrawal || status != StatusSuccess {
		return 0
	}
	isOwnBank := rng.Intn(2) == 0
	if isOwnBank {
		return 0
	}
	fee, ok := withdrawalFees[segment]
	if !ok {
		return defaultWithdrawalFee
	}
	return fee
}

// uniform returns a random float64 in [min, max).
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
