package services

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// ReportingSvcFacade defines read-only aggregate views.
type ReportingSvcFacade interface {
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
