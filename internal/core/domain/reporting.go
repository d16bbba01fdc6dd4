package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates the headline numbers shown on the dashboard.
type DashboardSummary struct {
	TotalStudents int64           `json:"totalStudents"`
	TotalStaff    int64           `json:"totalStaff"`
	PendingFees   decimal.Decimal `json:"pendingFees"` // Sum of all fee account balances
}
