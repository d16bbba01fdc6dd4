package services

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
)

// StaffSvcFacade defines staff management and authentication operations.
type StaffSvcFacade interface {
	// Authenticate verifies staff credentials and returns the staff member.
	// Returns apperrors.ErrNotFound for unknown codes and ErrValidation for a
	// wrong password; handlers collapse both to a generic 401.
	Authenticate(ctx context.Context, staffCode, password string) (*domain.Staff, error)
	CreateStaff(ctx context.Context, req dto.CreateStaffRequest, actor domain.Actor) (*domain.Staff, error)
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	UpdateStaff(ctx context.Context, staffID string, req dto.UpdateStaffRequest, actor domain.Actor) (*domain.Staff, error)
	DeleteStaff(ctx context.Context, staffID string, actor domain.Actor) error
	// EnsureDefaultAdmin creates the bootstrap admin account when the staff
	// table is empty, so a fresh deployment can be logged into.
	EnsureDefaultAdmin(ctx context.Context, staffCode, password string) error
}
