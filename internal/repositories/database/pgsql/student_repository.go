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

// StudentRepository implements persistence for students on PostgreSQL.
type StudentRepository struct {
	BaseRepository
}

var _ portsrepo.StudentRepositoryFacade = (*StudentRepository)(nil)

// NewStudentRepository creates a new student repository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{BaseRepository: NewBaseRepository(pool)}
}

const studentColumns = `student_id, adm_no, name, class, section, contact, status, tc_verified, created_at, created_by, last_updated_at, last_updated_by`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var m models.Student
	err := row.Scan(
		&m.StudentID, &m.AdmNo, &m.Name, &m.Class, &m.Section, &m.Contact,
		&m.Status, &m.TCVerified,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveStudent inserts a new student record.
func (r *StudentRepository) SaveStudent(ctx context.Context, student domain.Student) error {
	m := mapping.ToModelStudent(student)
	query := `
		INSERT INTO students (` + studentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		m.StudentID, m.AdmNo, m.Name, m.Class, m.Section, m.Contact,
		m.Status, m.TCVerified,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: admission number %s already exists", apperrors.ErrDuplicate, m.AdmNo)
		}
		return fmt.Errorf("failed to save student: %w", err)
	}
	return nil
}

// FindStudentByID retrieves a student by their ID.
func (r *StudentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1`
	m, err := scanStudent(r.pool.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: student with ID %s not found", apperrors.ErrNotFound, studentID)
		}
		return nil, fmt.Errorf("failed to find student by ID: %w", err)
	}
	student := mapping.ToDomainStudent(*m)
	return &student, nil
}

// FindStudentByAdmNo retrieves a student by admission number.
func (r *StudentRepository) FindStudentByAdmNo(ctx context.Context, admNo string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE adm_no = $1`
	m, err := scanStudent(r.pool.QueryRow(ctx, query, admNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: student with admission number %s not found", apperrors.ErrNotFound, admNo)
		}
		return nil, fmt.Errorf("failed to find student by admission number: %w", err)
	}
	student := mapping.ToDomainStudent(*m)
	return &student, nil
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...any) ([]domain.Student, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var ms []models.Student
	for rows.Next() {
		m, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return mapping.ToDomainStudentSlice(ms), nil
}

// ListStudents returns all students ordered by class, section and admission number.
func (r *StudentRepository) ListStudents(ctx context.Context) ([]domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY class, section, adm_no`
	return r.queryStudents(ctx, query)
}

// ListStudentsByClassSection returns students of one class/section ordered by admission number.
func (r *StudentRepository) ListStudentsByClassSection(ctx context.Context, class, section string) ([]domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE class = $1 AND section = $2 ORDER BY adm_no`
	return r.queryStudents(ctx, query, class, section)
}

// ListAdmNosByPrefix returns admission numbers starting with the given prefix.
func (r *StudentRepository) ListAdmNosByPrefix(ctx context.Context, prefix string) ([]string, error) {
	query := `SELECT adm_no FROM students WHERE adm_no LIKE $1 || '%'`
	rows, err := r.pool.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to query admission numbers: %w", err)
	}
	defer rows.Close()

	var admNos []string
	for rows.Next() {
		var admNo string
		if err := rows.Scan(&admNo); err != nil {
			return nil, fmt.Errorf("failed to scan admission number: %w", err)
		}
		admNos = append(admNos, admNo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admission numbers: %w", err)
	}
	return admNos, nil
}

// UpdateStudent updates an existing student record.
func (r *StudentRepository) UpdateStudent(ctx context.Context, student domain.Student) error {
	m := mapping.ToModelStudent(student)
	query := `
		UPDATE students
		SET name = $2, class = $3, section = $4, contact = $5, status = $6,
			tc_verified = $7, last_updated_at = $8, last_updated_by = $9
		WHERE student_id = $1`
	tag, err := r.pool.Exec(ctx, query,
		m.StudentID, m.Name, m.Class, m.Section, m.Contact, m.Status,
		m.TCVerified, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: student with ID %s not found", apperrors.ErrNotFound, m.StudentID)
	}
	return nil
}

// DeleteStudent removes a student. The fee account cascades; payments stay.
func (r *StudentRepository) DeleteStudent(ctx context.Context, studentID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: student with ID %s not found", apperrors.ErrNotFound, studentID)
	}
	return nil
}
