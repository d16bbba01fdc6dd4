package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeAccount is the single running fee ledger for one student.
// Balance is positive when the student owes money. The only mutation path is
// the payment recording transaction; no other code writes Balance.
type FeeAccount struct {
	StudentID     string          `json:"studentID"` // Primary Key, 1:1 with Student
	LastPaidMonth string          `json:"lastPaidMonth"`
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}

// Payment is an immutable record of money received against a student's fee
// account. Once inserted it is never updated or deleted; its only derived
// effect is the one-time balance decrement performed in the same transaction.
type Payment struct {
	PaymentID  int64           `json:"paymentID"` // Receipt number (DB sequence)
	StudentID  string          `json:"studentID"`
	Amount     decimal.Decimal `json:"amount"` // Always positive
	Month      string          `json:"month"`  // Target month label, e.g. "2025-10"
	Mode       string          `json:"mode"`   // Cash/Cheque/Online/... free text
	Notes      string          `json:"notes"`
	RecordedBy string          `json:"recordedBy"` // StaffID of the recording actor
	CreatedAt  time.Time       `json:"createdAt"`  // Server-assigned
}

// FeeOverviewRow is the receivables projection: one row per student with the
// joined ledger state, for the billing overview listing.
type FeeOverviewRow struct {
	StudentID     string          `json:"studentID"`
	AdmNo         string          `json:"admNo"`
	Name          string          `json:"name"`
	Class         string          `json:"class"`
	Section       string          `json:"section"`
	LastPaidMonth string          `json:"lastPaidMonth"`
	Balance       decimal.Decimal `json:"balance"`
}

// PaymentWithStudent joins a payment with the owning student's current
// identity fields, for payment listings and receipts. Student fields reflect
// identity as of now, not a historical snapshot.
type PaymentWithStudent struct {
	Payment
	AdmNo       string `json:"admNo"`
	StudentName string `json:"studentName"`
	Class       string `json:"class"`
	Section     string `json:"section"`
}
