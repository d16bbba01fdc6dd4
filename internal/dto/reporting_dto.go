package dto

import (
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse carries the dashboard headline numbers.
type DashboardSummaryResponse struct {
	TotalStudents int64           `json:"totalStudents"`
	TotalStaff    int64           `json:"totalStaff"`
	PendingFees   decimal.Decimal `json:"pendingFees"`
}

// ToDashboardSummaryResponse converts the domain summary to a DTO.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalStudents: s.TotalStudents,
		TotalStaff:    s.TotalStaff,
		PendingFees:   s.PendingFees,
	}
}
