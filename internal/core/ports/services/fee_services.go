package services

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
)

// FeeSvcFacade is the single entry point to the fee ledger: balance queries,
// the receivables overview, payment recording and receipt data.
type FeeSvcFacade interface {
	// GetOrCreateAccount returns the student's fee account, materializing a
	// zero-balance account when none exists. The bool reports whether the
	// account was created by this call.
	GetOrCreateAccount(ctx context.Context, studentID string, actor domain.Actor) (*domain.FeeAccount, bool, error)
	// ListAccounts returns the receivables overview ordered by
	// (class, section, adm_no).
	ListAccounts(ctx context.Context) ([]domain.FeeOverviewRow, error)
	// RecordPayment validates and commits a payment as one atomic unit:
	// account creation when missing, immutable payment insert and balance
	// decrement either all commit or all roll back.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, actor domain.Actor) (*dto.RecordPaymentResponse, error)
	ListPayments(ctx context.Context, studentID *string) ([]domain.PaymentWithStudent, error)
	// GetReceipt returns the renderable view of one payment joined with the
	// owning student's current identity. Read-only and deterministic.
	GetReceipt(ctx context.Context, paymentID int64) (*dto.Receipt, error)
}
