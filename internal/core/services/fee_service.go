package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/apperrors"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"
	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
)

// FeeService implements the fee ledger: balance queries, the receivables
// overview, payment recording and receipt data.
type FeeService struct {
	feeRepo     portsrepo.FeeRepositoryFacade
	studentRepo portsrepo.StudentRepositoryFacade
}

var _ portssvc.FeeSvcFacade = (*FeeService)(nil)

// NewFeeService creates a new fee service.
func NewFeeService(feeRepo portsrepo.FeeRepositoryFacade, studentRepo portsrepo.StudentRepositoryFacade) *FeeService {
	return &FeeService{feeRepo: feeRepo, studentRepo: studentRepo}
}

// GetOrCreateAccount returns the student's fee account, materializing a
// zero-balance account when none exists yet. The bool reports whether this
// call created it.
func (s *FeeService) GetOrCreateAccount(ctx context.Context, studentID string, actor domain.Actor) (*domain.FeeAccount, bool, error) {
	if _, err := s.studentRepo.FindStudentByID(ctx, studentID); err != nil {
		return nil, false, err
	}
	return s.feeRepo.CreateAccountIfAbsent(ctx, studentID, actor.StaffID, time.Now())
}

// ListAccounts returns the receivables overview ordered by (class, section, adm_no).
func (s *FeeService) ListAccounts(ctx context.Context) ([]domain.FeeOverviewRow, error) {
	return s.feeRepo.ListFeeOverview(ctx)
}

// validateMonth accepts an empty month or one in "YYYY-MM" form.
func validateMonth(month string) error {
	if month == "" {
		return nil
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("%w: month must be in YYYY-MM format", apperrors.ErrValidation)
	}
	return nil
}

// RecordPayment validates and commits a fee payment. The whole write is one
// transaction in the repository; by the time this returns, either the payment
// row exists and the balance reflects it, or neither happened.
func (s *FeeService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, actor domain.Actor) (*dto.RecordPaymentResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.Role.CanRecordPayments() {
		return nil, fmt.Errorf("%w: role %s cannot record payments", apperrors.ErrForbidden, actor.Role)
	}

	// Amounts are normalized to two decimal places, rounding half up, before
	// any comparison or storage.
	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if err := validateMonth(req.Month); err != nil {
		return nil, err
	}

	if _, err := s.studentRepo.FindStudentByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	payment := domain.Payment{
		StudentID:  req.StudentID,
		Amount:     amount,
		Month:      req.Month,
		Mode:       req.Mode,
		Notes:      req.Notes,
		RecordedBy: actor.StaffID,
	}

	stored, account, err := s.feeRepo.SavePayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment recorded",
		slog.Int64("payment_id", stored.PaymentID),
		slog.String("student_id", stored.StudentID),
		slog.String("amount", stored.Amount.String()),
	)

	return &dto.RecordPaymentResponse{
		Success:   true,
		PaymentID: stored.PaymentID,
		Fees: dto.FeeSnapshot{
			Balance:       account.Balance,
			LastPaidMonth: account.LastPaidMonth,
		},
	}, nil
}

// ListPayments returns payments newest first, optionally for one student.
func (s *FeeService) ListPayments(ctx context.Context, studentID *string) ([]domain.PaymentWithStudent, error) {
	return s.feeRepo.ListPayments(ctx, studentID)
}

// GetReceipt returns the renderable view of one payment. Receipts are derived
// purely from the stored payment, so re-fetching the same ID always yields
// the same content apart from the student's current identity fields.
func (s *FeeService) GetReceipt(ctx context.Context, paymentID int64) (*dto.Receipt, error) {
	payment, err := s.feeRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	receipt := dto.ToReceipt(payment)
	return &receipt, nil
}
