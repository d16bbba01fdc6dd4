package dto

import (
	"time"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest carries a fee payment to be recorded.
type RecordPaymentRequest struct {
	StudentID string          `json:"student_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Month     string          `json:"month"`
	Mode      string          `json:"mode"`
	Notes     string          `json:"notes"`
}

// FeeSnapshot is the state of a fee account after an operation.
type FeeSnapshot struct {
	Balance       decimal.Decimal `json:"balance"`
	LastPaidMonth string          `json:"last_paid_month"`
}

// RecordPaymentResponse is returned after a payment commits.
type RecordPaymentResponse struct {
	Success   bool        `json:"success"`
	PaymentID int64       `json:"paymentId"`
	Fees      FeeSnapshot `json:"fees"`
}

// FeeAccountResponse is returned for a single fee account query.
type FeeAccountResponse struct {
	StudentID     string          `json:"student_id"`
	Balance       decimal.Decimal `json:"balance"`
	LastPaidMonth string          `json:"last_paid_month"`
	Created       bool            `json:"created"` // True when the query materialized the account
}

// ToFeeAccountResponse converts a domain.FeeAccount plus the creation flag.
func ToFeeAccountResponse(acc *domain.FeeAccount, created bool) FeeAccountResponse {
	return FeeAccountResponse{
		StudentID:     acc.StudentID,
		Balance:       acc.Balance,
		LastPaidMonth: acc.LastPaidMonth,
		Created:       created,
	}
}

// FeeOverviewStudent is the identity sub-object of a fee overview row.
type FeeOverviewStudent struct {
	AdmNo   string `json:"adm_no"`
	Name    string `json:"name"`
	Class   string `json:"class"`
	Section string `json:"section"`
}

// FeeOverviewResponse is one row of the receivables overview.
type FeeOverviewResponse struct {
	StudentID     string             `json:"student_id"`
	Student       FeeOverviewStudent `json:"student"`
	LastPaidMonth string             `json:"last_paid_month"`
	Balance       decimal.Decimal    `json:"balance"`
}

// ToFeeOverviewResponse converts domain overview rows to DTOs. Students
// without an account yet surface "-" as the last paid month, like the
// receivables screen expects.
func ToFeeOverviewResponse(rows []domain.FeeOverviewRow) []FeeOverviewResponse {
	res := make([]FeeOverviewResponse, len(rows))
	for i, r := range rows {
		month := r.LastPaidMonth
		if month == "" {
			month = "-"
		}
		res[i] = FeeOverviewResponse{
			StudentID: r.StudentID,
			Student: FeeOverviewStudent{
				AdmNo:   r.AdmNo,
				Name:    r.Name,
				Class:   r.Class,
				Section: r.Section,
			},
			LastPaidMonth: month,
			Balance:       r.Balance,
		}
	}
	return res
}

// PaymentResponse is one row of a payment listing.
type PaymentResponse struct {
	PaymentID   int64           `json:"id"`
	StudentID   string          `json:"student_id"`
	AdmNo       string          `json:"adm_no"`
	StudentName string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Month       string          `json:"month"`
	Mode        string          `json:"mode"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToPaymentResponses converts joined payment rows to DTOs.
func ToPaymentResponses(rows []domain.PaymentWithStudent) []PaymentResponse {
	res := make([]PaymentResponse, len(rows))
	for i, r := range rows {
		res[i] = PaymentResponse{
			PaymentID:   r.PaymentID,
			StudentID:   r.StudentID,
			AdmNo:       r.AdmNo,
			StudentName: r.StudentName,
			Amount:      r.Amount,
			Month:       r.Month,
			Mode:        r.Mode,
			Notes:       r.Notes,
			CreatedAt:   r.CreatedAt,
		}
	}
	return res
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	StudentID *string `form:"student_id"`
}

// Receipt is the renderable view of one recorded payment. Amount is
// pre-formatted to two decimal places so templates need no money logic.
type Receipt struct {
	ReceiptNo   int64  `json:"receiptNo"`
	Date        string `json:"date"`
	AdmNo       string `json:"admNo"`
	StudentName string `json:"studentName"`
	Class       string `json:"class"`
	Section     string `json:"section"`
	Amount      string `json:"amount"`
	Month       string `json:"month"`
	Mode        string `json:"mode"`
	Notes       string `json:"notes"`
}

// ToReceipt converts a joined payment row into a receipt view.
func ToReceipt(p *domain.PaymentWithStudent) Receipt {
	return Receipt{
		ReceiptNo:   p.PaymentID,
		Date:        p.CreatedAt.Format("02 Jan 2006"),
		AdmNo:       p.AdmNo,
		StudentName: p.StudentName,
		Class:       p.Class,
		Section:     p.Section,
		Amount:      p.Amount.StringFixed(2),
		Month:       p.Month,
		Mode:        p.Mode,
		Notes:       p.Notes,
	}
}
