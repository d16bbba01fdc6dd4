package services

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"
	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
)

// ReportingService provides read-only aggregate views.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

// GetDashboardSummary returns the dashboard headline numbers.
func (s *ReportingService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	return s.reportingRepo.GetDashboardSummary(ctx)
}
