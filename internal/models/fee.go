package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeAccount represents a row in the fee_accounts table.
type FeeAccount struct {
	StudentID     string          `json:"studentID"`
	LastPaidMonth string          `json:"lastPaidMonth"`
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}

// Payment represents a row in the payments table. Rows are append-only.
type Payment struct {
	PaymentID  int64           `json:"paymentID"`
	StudentID  string          `json:"studentID"`
	Amount     decimal.Decimal `json:"amount"`
	Month      string          `json:"month"`
	Mode       string          `json:"mode"`
	Notes      string          `json:"notes"`
	RecordedBy string          `json:"recordedBy"`
	CreatedAt  time.Time       `json:"createdAt"`
}
