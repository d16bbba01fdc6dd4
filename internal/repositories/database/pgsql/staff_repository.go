package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/apperrors"
	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/models"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/utils/mapping"
)

// StaffRepository implements persistence for staff members on PostgreSQL.
type StaffRepository struct {
	BaseRepository
}

var _ portsrepo.StaffRepositoryFacade = (*StaffRepository)(nil)

// NewStaffRepository creates a new staff repository.
func NewStaffRepository(pool *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{BaseRepository: NewBaseRepository(pool)}
}

const staffColumns = `staff_id, staff_code, name, role, subject, phone, email, password_hash, created_at, created_by, last_updated_at, last_updated_by`

func scanStaff(row pgx.Row) (*models.Staff, error) {
	var m models.Staff
	err := row.Scan(
		&m.StaffID, &m.StaffCode, &m.Name, &m.Role, &m.Subject, &m.Phone,
		&m.Email, &m.PasswordHash,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveStaff inserts a new staff record.
func (r *StaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	m := mapping.ToModelStaff(staff)
	query := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		m.StaffID, m.StaffCode, m.Name, m.Role, m.Subject, m.Phone,
		m.Email, m.PasswordHash,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: staff code %s already exists", apperrors.ErrDuplicate, m.StaffCode)
		}
		return fmt.Errorf("failed to save staff: %w", err)
	}
	return nil
}

// FindStaffByID retrieves a staff member by their ID.
func (r *StaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = $1`
	m, err := scanStaff(r.pool.QueryRow(ctx, query, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: staff with ID %s not found", apperrors.ErrNotFound, staffID)
		}
		return nil, fmt.Errorf("failed to find staff by ID: %w", err)
	}
	staff := mapping.ToDomainStaff(*m)
	return &staff, nil
}

// FindStaffByCode retrieves a staff member by their login code.
func (r *StaffRepository) FindStaffByCode(ctx context.Context, staffCode string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_code = $1`
	m, err := scanStaff(r.pool.QueryRow(ctx, query, staffCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: staff with code %s not found", apperrors.ErrNotFound, staffCode)
		}
		return nil, fmt.Errorf("failed to find staff by code: %w", err)
	}
	staff := mapping.ToDomainStaff(*m)
	return &staff, nil
}

// ListStaff returns all staff members ordered by name.
func (r *StaffRepository) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var ms []models.Staff
	for rows.Next() {
		m, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", err)
	}
	return mapping.ToDomainStaffSlice(ms), nil
}

// CountStaff returns the number of staff records.
func (r *StaffRepository) CountStaff(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count staff: %w", err)
	}
	return count, nil
}

// UpdateStaff updates an existing staff record.
func (r *StaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	m := mapping.ToModelStaff(staff)
	query := `
		UPDATE staff
		SET name = $2, role = $3, subject = $4, phone = $5, email = $6,
			password_hash = $7, last_updated_at = $8, last_updated_by = $9
		WHERE staff_id = $1`
	tag, err := r.pool.Exec(ctx, query,
		m.StaffID, m.Name, m.Role, m.Subject, m.Phone, m.Email,
		m.PasswordHash, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: staff with ID %s not found", apperrors.ErrNotFound, m.StaffID)
	}
	return nil
}

// DeleteStaff removes a staff record.
func (r *StaffRepository) DeleteStaff(ctx context.Context, staffID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE staff_id = $1`, staffID)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: staff with ID %s not found", apperrors.ErrNotFound, staffID)
	}
	return nil
}
