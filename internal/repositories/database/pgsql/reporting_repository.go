package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// ReportingRepository implements read-only aggregate queries on PostgreSQL.
type ReportingRepository struct {
	BaseRepository
}

var _ portsrepo.ReportingRepositoryFacade = (*ReportingRepository)(nil)

// NewReportingRepository creates a new reporting repository.
func NewReportingRepository(pool *pgxpool.Pool) *ReportingRepository {
	return &ReportingRepository{BaseRepository: NewBaseRepository(pool)}
}

// GetDashboardSummary returns headline counts and the total outstanding balance.
func (r *ReportingRepository) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM staff),
			(SELECT COALESCE(SUM(balance), 0) FROM fee_accounts)`
	var summary domain.DashboardSummary
	err := r.pool.QueryRow(ctx, query).Scan(&summary.TotalStudents, &summary.TotalStaff, &summary.PendingFees)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard summary: %w", err)
	}
	return &summary, nil
}
