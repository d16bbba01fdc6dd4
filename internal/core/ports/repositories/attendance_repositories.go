package repositories

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// AttendanceRepositoryFacade defines persistence operations for attendance records.
type AttendanceRepositoryFacade interface {
	// FindByDateAndStudentIDs returns existing records for a date keyed by student ID.
	FindByDateAndStudentIDs(ctx context.Context, date string, studentIDs []string) (map[string]domain.Attendance, error)
	// UpsertAttendance inserts or replaces the records for their (student, date)
	// pairs within a single transaction.
	UpsertAttendance(ctx context.Context, records []domain.Attendance) error
}
