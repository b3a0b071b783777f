package models

import "time"

// CustomerProfile describes one synthetic bank customer. The financial
// fields are correlated: annual income derives from age group and segment,
// and the balance is bounded by 30% of annual income.
type CustomerProfile struct {
	ID                       string    `json:"customer_id"`
	AccountNumber            string    `json:"account_number"`
	Name                     string    `json:"customer_name"`
	AgeGroup                 string    `json:"age_group"`
	Segment                  string    `json:"customer_segment"`
	AccountType              string    `json:"account_type"`
	RegistrationDate         time.Time `json:"registration_date"`
	City                     string    `json:"city"`
	State                    string    `json:"state"`
	AnnualIncome             int       `json:"annual_income"`
	AccountBalance           float64   `json:"account_balance"`
	CreditScore              int       `json:"credit_score"`
	MonthlyTransactions      int       `json:"monthly_transactions"`
	AvgTransactionAmount     float64   `json:"avg_transaction_amount"`
	AccountAgeMonths         int       `json:"account_age_months"`
	OverdraftLimit           int       `json:"overdraft_limit"`
	LoyaltyPoints            int       `json:"loyalty_points"`
	DigitalBankingUser       bool      `json:"digital_banking_user"`
	PreferredTransactionTime string    `json:"preferred_transaction_time"`
}
