package synthesis

import (
	"fmt"
	"math"
	"time"

	"atm-stream-generator/internal/models"
)

// deriveMetrics fills in every field of tx that is a pure function of the
// sampled fields: time dimensions, analytics flags, and financial ratios.
func deriveMetrics(tx *models.Transaction, ts time.Time, customer models.CustomerProfile, atm models.ATMProfile) {
	tx.Year = ts.Year()
	tx.Month = int(ts.Month())
	tx.Day = ts.Day()
	tx.Hour = ts.Hour()
	tx.DayOfWeek = ts.Weekday().String()
	tx.IsWeekend = weekdayIndex(ts) >= 5
	tx.Quarter = fmt.Sprintf("Q%d", (int(ts.Month())-1)/3+1)
	_, tx.WeekOfYear = ts.ISOWeek()
	tx.DaysSinceEpoch = daysSinceEpoch(ts)

	tx.IsSuccessful = tx.Status == StatusSuccess
	tx.IsHighAmount = tx.Amount > 500
	tx.BusinessHours = ts.Hour() >= 9 && ts.Hour() <= 17
	tx.IsHighValueCustomer = customer.Segment == "Premium" || customer.Segment == "Gold"

	if tx.Amount > 0 {
		tx.TransactionToBalanceRatio = round4(tx.Amount / math.Max(customer.AccountBalance, 1))
		tx.IncomeToTransactionRatio = round2(float64(customer.AnnualIncome) / math.Max(tx.Amount, 1))
		tx.BalanceUtilizationPercent = round2(tx.Amount / math.Max(customer.AccountBalance, 1) * 100)
	}

	tx.TransactionEfficiencyScore = round2(10 - float64(tx.ResponseTimeMs)/500)
	tx.CustomerLifetimeValue = round2(float64(customer.AnnualIncome) * float64(customer.AccountAgeMonths) / 12 * 0.02)
	tx.TransactionVelocityRisk = tx.Amount > customer.AvgTransactionAmount*3
	// Lunch and after-work hours.
	tx.PeakHourTransaction = ts.Hour() == 12 || ts.Hour() == 13 || ts.Hour() == 17 || ts.Hour() == 18
	tx.CrossSellingOpportunity = !customer.DigitalBankingUser &&
		(customer.Segment == "Gold" || customer.Segment == "Premium")

	tx.CustomerRiskScore = clamp(100-customer.CreditScore/8, 0, 100)
	tx.ATMPerformanceIndex = round2(atm.MaintenanceScore * atm.UptimePercentage / 10)
}

// weekdayIndex maps a time to the Monday=0..Sunday=6 convention so that
// Saturday and Sunday are the two highest values.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// daysSinceEpoch counts whole calendar days between the timestamp's date
// and 1970-01-01.
func daysSinceEpoch(t time.Time) int {
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(date.Unix() / 86400)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
