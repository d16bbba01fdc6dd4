package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/apperrors"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/utils"
)

// --- Mock StaffRepository ---
type MockStaffRepository struct {
	mock.Mock
}

var _ portsrepo.StaffRepositoryFacade = (*MockStaffRepository)(nil)

func (m *MockStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindStaffByCode(ctx context.Context, staffCode string) (*domain.Staff, error) {
	args := m.Called(ctx, staffCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) CountStaff(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) DeleteStaff(ctx context.Context, staffID string) error {
	args := m.Called(ctx, staffID)
	return args.Error(0)
}

// --- Test Suite ---
type StaffServiceTestSuite struct {
	suite.Suite
	mockStaffRepo *MockStaffRepository
	service       *services.StaffService
	admin         domain.Actor
}

func (s *StaffServiceTestSuite) SetupTest() {
	s.mockStaffRepo = new(MockStaffRepository)
	s.service = services.NewStaffService(s.mockStaffRepo, "changeme")
	s.admin = domain.Actor{StaffID: uuid.NewString(), Role: domain.RoleAdmin}
}

func (s *StaffServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()

	hash, err := utils.HashPassword("secret123")
	s.Require().NoError(err)

	staff := domain.Staff{
		StaffID:      uuid.NewString(),
		StaffCode:    "GSN-T-002",
		Role:         domain.RoleTeacher,
		PasswordHash: hash,
	}
	s.mockStaffRepo.On("FindStaffByCode", ctx, "GSN-T-002").Return(&staff, nil).Once()

	got, err := s.service.Authenticate(ctx, "GSN-T-002", "secret123")

	s.Require().NoError(err)
	s.Equal(staff.StaffID, got.StaffID)
}

func (s *StaffServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()

	hash, err := utils.HashPassword("secret123")
	s.Require().NoError(err)

	staff := domain.Staff{StaffID: uuid.NewString(), StaffCode: "GSN-T-002", PasswordHash: hash}
	s.mockStaffRepo.On("FindStaffByCode", ctx, "GSN-T-002").Return(&staff, nil).Once()

	_, err = s.service.Authenticate(ctx, "GSN-T-002", "wrong")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *StaffServiceTestSuite) TestAuthenticate_UnknownCode() {
	ctx := context.Background()

	s.mockStaffRepo.On("FindStaffByCode", ctx, "GSN-X-999").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Authenticate(ctx, "GSN-X-999", "whatever")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StaffServiceTestSuite) TestCreateStaff_TeacherForbidden() {
	ctx := context.Background()
	teacher := domain.Actor{StaffID: uuid.NewString(), Role: domain.RoleTeacher}

	_, err := s.service.CreateStaff(ctx, dto.CreateStaffRequest{StaffCode: "GSN-T-003", Name: "X", Role: domain.RoleTeacher}, teacher)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockStaffRepo.AssertNotCalled(s.T(), "SaveStaff", mock.Anything, mock.Anything)
}

func (s *StaffServiceTestSuite) TestCreateStaff_HashesPassword() {
	ctx := context.Background()

	s.mockStaffRepo.On("SaveStaff", ctx, mock.MatchedBy(func(st domain.Staff) bool {
		return st.PasswordHash != "" && st.PasswordHash != "pw12345" &&
			utils.CheckPasswordHash("pw12345", st.PasswordHash)
	})).Return(nil).Once()

	staff, err := s.service.CreateStaff(ctx, dto.CreateStaffRequest{
		StaffCode: "GSN-T-003", Name: "New Teacher", Role: domain.RoleTeacher, Password: "pw12345",
	}, s.admin)

	s.Require().NoError(err)
	s.NotEmpty(staff.StaffID)
	s.mockStaffRepo.AssertExpectations(s.T())
}

func (s *StaffServiceTestSuite) TestDeleteStaff_SelfDeletionRejected() {
	ctx := context.Background()

	err := s.service.DeleteStaff(ctx, s.admin.StaffID, s.admin)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockStaffRepo.AssertNotCalled(s.T(), "DeleteStaff", mock.Anything, mock.Anything)
}

func (s *StaffServiceTestSuite) TestEnsureDefaultAdmin_CreatesWhenEmpty() {
	ctx := context.Background()

	s.mockStaffRepo.On("CountStaff", ctx).Return(int64(0), nil).Once()
	s.mockStaffRepo.On("SaveStaff", ctx, mock.MatchedBy(func(st domain.Staff) bool {
		return st.StaffCode == "GSN-A-001" && st.Role == domain.RoleAdmin &&
			utils.CheckPasswordHash("bootpw", st.PasswordHash)
	})).Return(nil).Once()

	err := s.service.EnsureDefaultAdmin(ctx, "GSN-A-001", "bootpw")

	s.Require().NoError(err)
	s.mockStaffRepo.AssertExpectations(s.T())
}

func (s *StaffServiceTestSuite) TestEnsureDefaultAdmin_SkipsWhenStaffExist() {
	ctx := context.Background()

	s.mockStaffRepo.On("CountStaff", ctx).Return(int64(3), nil).Once()

	err := s.service.EnsureDefaultAdmin(ctx, "GSN-A-001", "bootpw")

	s.Require().NoError(err)
	s.mockStaffRepo.AssertNotCalled(s.T(), "SaveStaff", mock.Anything, mock.Anything)
}

func TestStaffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}
