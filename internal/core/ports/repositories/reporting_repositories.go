package repositories

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// ReportingRepositoryFacade defines read-only aggregate queries.
type ReportingRepositoryFacade interface {
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
