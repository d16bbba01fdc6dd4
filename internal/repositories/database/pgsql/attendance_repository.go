package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// AttendanceRepository implements attendance persistence on PostgreSQL.
type AttendanceRepository struct {
	BaseRepository
}

var _ portsrepo.AttendanceRepositoryFacade = (*AttendanceRepository)(nil)

// NewAttendanceRepository creates a new attendance repository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{BaseRepository: NewBaseRepository(pool)}
}

// FindByDateAndStudentIDs returns existing records for a date keyed by student ID.
func (r *AttendanceRepository) FindByDateAndStudentIDs(ctx context.Context, date string, studentIDs []string) (map[string]domain.Attendance, error) {
	if len(studentIDs) == 0 {
		return map[string]domain.Attendance{}, nil
	}

	query := `
		SELECT student_id, date, status, remark
		FROM attendance
		WHERE date = $1 AND student_id = ANY($2)`
	rows, err := r.pool.Query(ctx, query, date, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	records := make(map[string]domain.Attendance)
	for rows.Next() {
		var a domain.Attendance
		if err := rows.Scan(&a.StudentID, &a.Date, &a.Status, &a.Remark); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records[a.StudentID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}
	return records, nil
}

// UpsertAttendance inserts or replaces the records for their (student, date)
// pairs within a single transaction, using a batch for the round trips.
func (r *AttendanceRepository) UpsertAttendance(ctx context.Context, records []domain.Attendance) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer r.RollbackTx(ctx, tx)

	upsert := `
		INSERT INTO attendance (student_id, date, status, remark)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, date) DO UPDATE
		SET status = EXCLUDED.status, remark = EXCLUDED.remark`

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(upsert, rec.StudentID, rec.Date, string(rec.Status), rec.Remark)
	}

	results := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to upsert attendance record: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close attendance batch: %w", err)
	}

	return r.CommitTx(ctx, tx)
}
