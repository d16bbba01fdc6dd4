package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/apperrors"
	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/models"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/utils/mapping"
)

// foreignKeyViolationCode is the PostgreSQL error code for FK violations.
const foreignKeyViolationCode = "23503"

// FeeRepository implements the fee ledger persistence on PostgreSQL.
//
// Payments are append-only: there is no update or delete statement for the
// payments table anywhere in this repository, and the balance column of
// fee_accounts is only written inside SavePayment's transaction.
type FeeRepository struct {
	BaseRepository
}

var _ portsrepo.FeeRepositoryFacade = (*FeeRepository)(nil)

// NewFeeRepository creates a new fee repository.
func NewFeeRepository(pool *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{BaseRepository: NewBaseRepository(pool)}
}

const feeAccountColumns = `student_id, last_paid_month, balance, created_at, created_by, last_updated_at, last_updated_by`

func scanFeeAccount(row pgx.Row) (*models.FeeAccount, error) {
	var m models.FeeAccount
	err := row.Scan(
		&m.StudentID, &m.LastPaidMonth, &m.Balance,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindAccountByStudentID retrieves the fee account for a student.
func (r *FeeRepository) FindAccountByStudentID(ctx context.Context, studentID string) (*domain.FeeAccount, error) {
	query := `SELECT ` + feeAccountColumns + ` FROM fee_accounts WHERE student_id = $1`
	m, err := scanFeeAccount(r.pool.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: fee account for student %s not found", apperrors.ErrNotFound, studentID)
		}
		return nil, fmt.Errorf("failed to find fee account: %w", err)
	}
	account := mapping.ToDomainFeeAccount(*m)
	return &account, nil
}

// CreateAccountIfAbsent inserts a zero-balance account for the student unless
// one exists already. The returned bool reports whether a row was inserted.
func (r *FeeRepository) CreateAccountIfAbsent(ctx context.Context, studentID string, actorID string, now time.Time) (*domain.FeeAccount, bool, error) {
	insert := `
		INSERT INTO fee_accounts (student_id, last_paid_month, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, '', 0, $2, $3, $2, $3)
		ON CONFLICT (student_id) DO NOTHING`
	tag, err := r.pool.Exec(ctx, insert, studentID, now, actorID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return nil, false, fmt.Errorf("%w: student with ID %s not found", apperrors.ErrNotFound, studentID)
		}
		return nil, false, fmt.Errorf("failed to create fee account: %w", err)
	}
	created := tag.RowsAffected() > 0

	account, err := r.FindAccountByStudentID(ctx, studentID)
	if err != nil {
		return nil, false, err
	}
	return account, created, nil
}

// ListFeeOverview returns one row per student with the ledger state joined in.
// Students without an account show a zero balance and no last paid month.
func (r *FeeRepository) ListFeeOverview(ctx context.Context) ([]domain.FeeOverviewRow, error) {
	query := `
		SELECT s.student_id, s.adm_no, s.name, s.class, s.section,
			COALESCE(fa.last_paid_month, ''), COALESCE(fa.balance, 0)
		FROM students s
		LEFT JOIN fee_accounts fa ON fa.student_id = s.student_id
		ORDER BY s.class, s.section, s.adm_no`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fee overview: %w", err)
	}
	defer rows.Close()

	var overview []domain.FeeOverviewRow
	for rows.Next() {
		var row domain.FeeOverviewRow
		err := rows.Scan(&row.StudentID, &row.AdmNo, &row.Name, &row.Class, &row.Section,
			&row.LastPaidMonth, &row.Balance)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fee overview row: %w", err)
		}
		overview = append(overview, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee overview rows: %w", err)
	}
	return overview, nil
}

// SavePayment records a payment in a single transaction: it materializes the
// fee account when missing, locks the account row, appends the payment and
// applies the balance decrement. Concurrent payments for the same student
// serialize on the row lock, so each one reads the balance the previous one
// committed.
func (r *FeeRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, *domain.FeeAccount, error) {
	tx, err := r.BeginTx(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.RollbackTx(ctx, tx)

	now := time.Now()

	ensureAccount := `
		INSERT INTO fee_accounts (student_id, last_paid_month, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, '', 0, $2, $3, $2, $3)
		ON CONFLICT (student_id) DO NOTHING`
	if _, err := tx.Exec(ctx, ensureAccount, payment.StudentID, now, payment.RecordedBy); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return nil, nil, fmt.Errorf("%w: student with ID %s not found", apperrors.ErrNotFound, payment.StudentID)
		}
		return nil, nil, fmt.Errorf("failed to ensure fee account: %w", err)
	}

	// Lock the account row for the rest of the transaction.
	lockQuery := `SELECT ` + feeAccountColumns + ` FROM fee_accounts WHERE student_id = $1 FOR UPDATE`
	accountModel, err := scanFeeAccount(tx.QueryRow(ctx, lockQuery, payment.StudentID))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock fee account: %w", err)
	}

	insertPayment := `
		INSERT INTO payments (student_id, amount, month, mode, notes, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING payment_id`
	stored := payment
	stored.CreatedAt = now
	err = tx.QueryRow(ctx, insertPayment,
		payment.StudentID, payment.Amount, payment.Month, payment.Mode,
		payment.Notes, payment.RecordedBy, now,
	).Scan(&stored.PaymentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	updateAccount := `
		UPDATE fee_accounts
		SET balance = balance - $2,
			last_paid_month = CASE WHEN $3 <> '' THEN $3 ELSE last_paid_month END,
			last_updated_at = $4, last_updated_by = $5
		WHERE student_id = $1
		RETURNING ` + feeAccountColumns
	accountModel, err = scanFeeAccount(tx.QueryRow(ctx, updateAccount,
		payment.StudentID, payment.Amount, payment.Month, now, payment.RecordedBy))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update fee account balance: %w", err)
	}

	if err := r.CommitTx(ctx, tx); err != nil {
		return nil, nil, err
	}

	account := mapping.ToDomainFeeAccount(*accountModel)
	return &stored, &account, nil
}

const paymentWithStudentQuery = `
	SELECT p.payment_id, p.student_id, p.amount, p.month, p.mode, p.notes, p.recorded_by, p.created_at,
		s.adm_no, s.name, s.class, s.section
	FROM payments p
	JOIN students s ON s.student_id = p.student_id`

func scanPaymentWithStudent(row pgx.Row) (*domain.PaymentWithStudent, error) {
	var m models.Payment
	var p domain.PaymentWithStudent
	err := row.Scan(
		&m.PaymentID, &m.StudentID, &m.Amount, &m.Month, &m.Mode, &m.Notes,
		&m.RecordedBy, &m.CreatedAt,
		&p.AdmNo, &p.StudentName, &p.Class, &p.Section,
	)
	if err != nil {
		return nil, err
	}
	p.Payment = mapping.ToDomainPayment(m)
	return &p, nil
}

// FindPaymentByID retrieves one payment joined with the owning student.
// Payments whose student has since been deleted are not found: the join
// drops them, which is the wanted behavior for receipts.
func (r *FeeRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.PaymentWithStudent, error) {
	query := paymentWithStudentQuery + ` WHERE p.payment_id = $1`
	p, err := scanPaymentWithStudent(r.pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %d not found", apperrors.ErrNotFound, paymentID)
		}
		return nil, fmt.Errorf("failed to find payment by ID: %w", err)
	}
	return p, nil
}

// ListPayments returns payments newest first, optionally filtered to one student.
func (r *FeeRepository) ListPayments(ctx context.Context, studentID *string) ([]domain.PaymentWithStudent, error) {
	query := paymentWithStudentQuery
	var args []any
	if studentID != nil {
		query += ` WHERE p.student_id = $1`
		args = append(args, *studentID)
	}
	query += ` ORDER BY p.payment_id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.PaymentWithStudent
	for rows.Next() {
		p, err := scanPaymentWithStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}
