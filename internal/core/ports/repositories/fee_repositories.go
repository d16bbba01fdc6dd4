package repositories

import (
	"context"
	"time"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// FeeRepositoryFacade defines persistence operations for the fee ledger.
//
// Balance is only ever written by SavePayment and CreateAccountIfAbsent; there
// is deliberately no generic account update method.
type FeeRepositoryFacade interface {
	FindAccountByStudentID(ctx context.Context, studentID string) (*domain.FeeAccount, error)
	// CreateAccountIfAbsent inserts a zero-balance account for the student unless
	// one exists already. Returns the account and whether it was created now.
	CreateAccountIfAbsent(ctx context.Context, studentID string, actorID string, now time.Time) (*domain.FeeAccount, bool, error)
	// ListFeeOverview returns one row per student (accounts joined in, zero
	// balance when absent), ordered by (class, section, adm_no).
	ListFeeOverview(ctx context.Context) ([]domain.FeeOverviewRow, error)

	// SavePayment atomically creates the fee account when missing, appends the
	// payment row and applies the balance decrement, all in one serializable
	// unit: either every effect commits or none do. The account row is locked
	// for the duration so concurrent payments for one student serialize.
	// Returns the stored payment (with server-assigned ID and timestamp) and
	// the post-update account snapshot.
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, *domain.FeeAccount, error)

	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.PaymentWithStudent, error)
	// ListPayments returns payments newest first, optionally for one student.
	ListPayments(ctx context.Context, studentID *string) ([]domain.PaymentWithStudent, error)
}
