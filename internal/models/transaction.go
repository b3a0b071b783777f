package models

// Transaction is one synthesized ATM transaction record, flattened for
// ingestion: core transaction data, the customer and ATM snapshots, and the
// derived analytics fields. Records are ephemeral; nothing retains them
// after delivery.
//
// Timestamps are ISO-8601 strings without a zone so that a marshalled record
// parses back to the exact same key/value set.
type Transaction struct {
	// Core transaction data
	TransactionID        string  `json:"transaction_id"`
	TransactionTimestamp string  `json:"transaction_timestamp"`
	TransactionDate      string  `json:"transaction_date"`
	TransactionTime      string  `json:"transaction_time"`
	Amount               float64 `json:"amount"`
	TransactionFee       float64 `json:"transaction_fee"`
	Status               string  `json:"status"`
	ResponseTimeMs       int     `json:"response_time_ms"`
	CustomerID           string  `json:"customer_id"`
	AccountNumber        string  `json:"account_number"`
	ATMID                string  `json:"atm_id"`
	TransactionType      string  `json:"transaction_type"`

	// Time dimensions
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	Day            int    `json:"day"`
	Hour           int    `json:"hour"`
	DayOfWeek      string `json:"day_of_week"`
	IsWeekend      bool   `json:"is_weekend"`
	Quarter        string `json:"quarter"`
	WeekOfYear     int    `json:"week_of_year"`
	DaysSinceEpoch int    `json:"days_since_epoch"`

	// Customer snapshot
	CustomerName             string  `json:"customer_name"`
	AgeGroup                 string  `json:"age_group"`
	CustomerSegment          string  `json:"customer_segment"`
	AccountType              string  `json:"account_type"`
	CustomerCity             string  `json:"customer_city"`
	CustomerState            string  `json:"customer_state"`
	AnnualIncome             int     `json:"annual_income"`
	AccountBalance           float64 `json:"account_balance"`
	CreditScore              int     `json:"credit_score"`
	MonthlyTransactions      int     `json:"monthly_transactions"`
	AvgTransactionAmount     float64 `json:"avg_transaction_amount"`
	AccountAgeMonths         int     `json:"account_age_months"`
	OverdraftLimit           int     `json:"overdraft_limit"`
	LoyaltyPoints            int     `json:"loyalty_points"`
	DigitalBankingUser       bool    `json:"digital_banking_user"`
	PreferredTransactionTime string  `json:"preferred_transaction_time"`

	// ATM snapshot
	ATMLocation           string  `json:"atm_location"`
	ATMCity               string  `json:"atm_city"`
	ATMState              string  `json:"atm_state"`
	ATMCountry            string  `json:"atm_country"`
	BankName              string  `json:"bank_name"`
	ATMType               string  `json:"atm_type"`
	Region                string  `json:"region"`
	ATMCashCapacity       int     `json:"atm_cash_capacity"`
	DailyTransactionLimit int     `json:"daily_transaction_limit"`
	MaintenanceScore      float64 `json:"maintenance_score"`
	UptimePercentage      float64 `json:"uptime_percentage"`
	AvgQueueTimeMinutes   float64 `json:"avg_queue_time_minutes"`

	// Derived analytics fields
	IsSuccessful               bool    `json:"is_successful"`
	IsHighAmount               bool    `json:"is_high_amount"`
	BusinessHours              bool    `json:"business_hours"`
	IsHighValueCustomer        bool    `json:"is_high_value_customer"`
	TransactionToBalanceRatio  float64 `json:"transaction_to_balance_ratio"`
	DistanceFromHomeKm         float64 `json:"distance_from_home_km"`
	IsFrequentLocation         bool    `json:"is_frequent_location"`
	TransactionEfficiencyScore float64 `json:"transaction_efficiency_score"`
	CustomerLifetimeValue      float64 `json:"customer_lifetime_value"`
	TransactionVelocityRisk    bool    `json:"transaction_velocity_risk"`
	PeakHourTransaction        bool    `json:"peak_hour_transaction"`
	CrossSellingOpportunity    bool    `json:"cross_selling_opportunity"`

	// Financial ratios and scores
	IncomeToTransactionRatio  float64 `json:"income_to_transaction_ratio"`
	BalanceUtilizationPercent float64 `json:"balance_utilization_percent"`
	CustomerRiskScore         int     `json:"customer_risk_score"`
	ATMPerformanceIndex       float64 `json:"atm_performance_index"`

	CreatedAt string `json:"created_at"`
}
