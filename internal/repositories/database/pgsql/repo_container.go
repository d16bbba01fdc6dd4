package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"
)

// NewRepositoryProvider creates all pgsql repositories over one pool and
// bundles them for the service container.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		StudentRepo:    NewStudentRepository(pool),
		StaffRepo:      NewStaffRepository(pool),
		FeeRepo:        NewFeeRepository(pool),
		AttendanceRepo: NewAttendanceRepository(pool),
		HomeworkRepo:   NewHomeworkRepository(pool),
		ReportingRepo:  NewReportingRepository(pool),
	}
}
