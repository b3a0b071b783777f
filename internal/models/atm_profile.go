package models

import "time"

// ATMProfile describes one synthetic ATM. Profiles are created once at
// startup and never mutated afterward.
type ATMProfile struct {
	ID                    string    `json:"atm_id"`
	Location              string    `json:"location"`
	City                  string    `json:"city"`
	State                 string    `json:"state"`
	Country               string    `json:"country"`
	BankName              string    `json:"bank_name"`
	ATMType               string    `json:"atm_type"`
	Region                string    `json:"region"`
	CashCapacity          int       `json:"atm_cash_capacity"`
	DailyTransactionLimit int       `json:"daily_transaction_limit"`
	InstallationDate      time.Time `json:"installation_date"`
	MaintenanceScore      float64   `json:"maintenance_score"`
	UptimePercentage      float64   `json:"uptime_percentage"`
	AvgQueueTimeMinutes   float64   `json:"avg_queue_time_minutes"`
}
