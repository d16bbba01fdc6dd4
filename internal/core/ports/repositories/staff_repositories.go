package repositories

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// StaffRepositoryFacade defines persistence operations for staff members.
type StaffRepositoryFacade interface {
	SaveStaff(ctx context.Context, staff domain.Staff) error
	FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)
	FindStaffByCode(ctx context.Context, staffCode string) (*domain.Staff, error)
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	CountStaff(ctx context.Context) (int64, error)
	UpdateStaff(ctx context.Context, staff domain.Staff) error
	DeleteStaff(ctx context.Context, staffID string) error
}
