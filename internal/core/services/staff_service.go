package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/apperrors"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"
	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/utils"
)

// StaffService provides staff management and authentication.
type StaffService struct {
	staffRepo       portsrepo.StaffRepositoryFacade
	defaultPassword string
}

var _ portssvc.StaffSvcFacade = (*StaffService)(nil)

// NewStaffService creates a new staff service. defaultPassword is hashed for
// staff created without an explicit password.
func NewStaffService(staffRepo portsrepo.StaffRepositoryFacade, defaultPassword string) *StaffService {
	return &StaffService{staffRepo: staffRepo, defaultPassword: defaultPassword}
}

// Authenticate verifies staff credentials. It returns ErrNotFound for unknown
// codes and ErrValidation for a wrong password; the handler collapses both to
// a generic 401 so login responses do not leak which part failed.
func (s *StaffService) Authenticate(ctx context.Context, staffCode, password string) (*domain.Staff, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	staff, err := s.staffRepo.FindStaffByCode(ctx, staffCode)
	if err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(password, staff.PasswordHash) {
		logger.Warn("Password mismatch during login", slog.String("staff_code", staffCode))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}

	return staff, nil
}

// CreateStaff creates a new staff member. Only admins may do this.
func (s *StaffService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest, actor domain.Actor) (*domain.Staff, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can create staff", apperrors.ErrForbidden)
	}

	password := req.Password
	if password == "" {
		password = s.defaultPassword
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password: %v", apperrors.ErrInternal, err)
	}

	now := time.Now()
	staff := domain.Staff{
		StaffID:      uuid.NewString(),
		StaffCode:    req.StaffCode,
		Name:         req.Name,
		Role:         req.Role,
		Subject:      req.Subject,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.StaffID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.StaffID,
		},
	}

	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		return nil, err
	}

	logger.Info("Staff created", slog.String("staff_id", staff.StaffID), slog.String("staff_code", staff.StaffCode))
	return &staff, nil
}

// ListStaff returns all staff members.
func (s *StaffService) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	return s.staffRepo.ListStaff(ctx)
}

// UpdateStaff applies the provided fields to an existing staff member.
func (s *StaffService) UpdateStaff(ctx context.Context, staffID string, req dto.UpdateStaffRequest, actor domain.Actor) (*domain.Staff, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can update staff", apperrors.ErrForbidden)
	}

	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if req.StaffCode != nil {
		staff.StaffCode = *req.StaffCode
	}
	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Role != nil {
		staff.Role = *req.Role
	}
	if req.Subject != nil {
		staff.Subject = *req.Subject
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	staff.LastUpdatedAt = time.Now()
	staff.LastUpdatedBy = actor.StaffID

	if err := s.staffRepo.UpdateStaff(ctx, *staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// DeleteStaff removes a staff member. Self-deletion is rejected so an admin
// cannot lock themselves out mid-session.
func (s *StaffService) DeleteStaff(ctx context.Context, staffID string, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: only admins can delete staff", apperrors.ErrForbidden)
	}
	if staffID == actor.StaffID {
		return fmt.Errorf("%w: cannot delete own account", apperrors.ErrValidation)
	}
	return s.staffRepo.DeleteStaff(ctx, staffID)
}

// EnsureDefaultAdmin creates the bootstrap admin account when the staff table
// is empty, so a fresh deployment can be logged into.
func (s *StaffService) EnsureDefaultAdmin(ctx context.Context, staffCode, password string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.staffRepo.CountStaff(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: failed to hash bootstrap password: %v", apperrors.ErrInternal, err)
	}

	now := time.Now()
	adminID := uuid.NewString()
	admin := domain.Staff{
		StaffID:      adminID,
		StaffCode:    staffCode,
		Name:         "Administrator",
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}

	if err := s.staffRepo.SaveStaff(ctx, admin); err != nil {
		return err
	}

	logger.Info("Bootstrap admin account created", slog.String("staff_code", staffCode))
	return nil
}
