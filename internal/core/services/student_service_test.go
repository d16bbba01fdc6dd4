package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/apperrors"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
)

type StudentServiceTestSuite struct {
	suite.Suite
	mockStudentRepo *MockStudentRepository
	service         *services.StudentService
	actor           domain.Actor
}

func (s *StudentServiceTestSuite) SetupTest() {
	s.mockStudentRepo = new(MockStudentRepository)
	s.service = services.NewStudentService(s.mockStudentRepo)
	s.actor = domain.Actor{StaffID: uuid.NewString(), Role: domain.RoleAdmin}
}

func (s *StudentServiceTestSuite) TestNextAdmissionNumber() {
	ctx := context.Background()

	// Malformed suffixes are ignored when scanning for the max.
	s.mockStudentRepo.On("ListAdmNosByPrefix", ctx, "2025/").
		Return([]string{"2025/001", "2025/044", "2025/002", "2025/abc"}, nil).Once()

	admNo, err := s.service.NextAdmissionNumber(ctx, 2025)

	s.Require().NoError(err)
	s.Equal("2025/045", admNo)
}

func (s *StudentServiceTestSuite) TestNextAdmissionNumber_FirstOfYear() {
	ctx := context.Background()

	s.mockStudentRepo.On("ListAdmNosByPrefix", ctx, "2026/").Return([]string{}, nil).Once()

	admNo, err := s.service.NextAdmissionNumber(ctx, 2026)

	s.Require().NoError(err)
	s.Equal("2026/001", admNo)
}

func (s *StudentServiceTestSuite) TestNextAdmissionNumber_PastThreeDigits() {
	ctx := context.Background()

	s.mockStudentRepo.On("ListAdmNosByPrefix", ctx, "2025/").
		Return([]string{"2025/999"}, nil).Once()

	admNo, err := s.service.NextAdmissionNumber(ctx, 2025)

	s.Require().NoError(err)
	s.Equal("2025/1000", admNo)
}

func (s *StudentServiceTestSuite) TestCreateStudent_DefaultsToActive() {
	ctx := context.Background()
	req := dto.CreateStudentRequest{AdmNo: "2025/046", Name: "Ravi", Class: "6", Section: "A"}

	s.mockStudentRepo.On("SaveStudent", ctx, mock.MatchedBy(func(st domain.Student) bool {
		return st.AdmNo == "2025/046" && st.Status == domain.StudentActive && st.StudentID != ""
	})).Return(nil).Once()

	student, err := s.service.CreateStudent(ctx, req, s.actor)

	s.Require().NoError(err)
	s.Equal(domain.StudentActive, student.Status)
	s.Equal(s.actor.StaffID, student.CreatedBy)
	s.mockStudentRepo.AssertExpectations(s.T())
}

func (s *StudentServiceTestSuite) TestCreateStudent_InvalidStatus() {
	ctx := context.Background()
	req := dto.CreateStudentRequest{AdmNo: "2025/046", Name: "Ravi", Class: "6", Section: "A", Status: "Expelled"}

	_, err := s.service.CreateStudent(ctx, req, s.actor)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockStudentRepo.AssertNotCalled(s.T(), "SaveStudent", mock.Anything, mock.Anything)
}

func (s *StudentServiceTestSuite) TestImportStudents_MixedRows() {
	ctx := context.Background()

	existing := domain.Student{StudentID: uuid.NewString(), AdmNo: "2025/001", Name: "Old Name", Class: "5", Section: "B"}

	rows := []dto.StudentImportRow{
		{AdmNo: "2025/001", Name: "New Name", Class: "6", Section: "A"},  // update
		{AdmNo: "2025/050", Name: "Fresh", Class: "6", Section: "A"},     // insert
		{AdmNo: "", Name: "No AdmNo", Class: "6", Section: "A"},          // skipped
		{AdmNo: "2025/051", Name: "", Class: "6", Section: "A"},          // skipped
	}

	s.mockStudentRepo.On("FindStudentByAdmNo", ctx, "2025/001").Return(&existing, nil).Once()
	s.mockStudentRepo.On("UpdateStudent", ctx, mock.MatchedBy(func(st domain.Student) bool {
		return st.StudentID == existing.StudentID && st.Name == "New Name" && st.Class == "6"
	})).Return(nil).Once()

	s.mockStudentRepo.On("FindStudentByAdmNo", ctx, "2025/050").Return(nil, apperrors.ErrNotFound).Once()
	s.mockStudentRepo.On("SaveStudent", ctx, mock.MatchedBy(func(st domain.Student) bool {
		return st.AdmNo == "2025/050" && st.Name == "Fresh"
	})).Return(nil).Once()

	result, err := s.service.ImportStudents(ctx, rows, s.actor)

	s.Require().NoError(err)
	s.Equal(1, result.Imported)
	s.Equal(1, result.Updated)
	s.Equal(2, result.Skipped)
	s.mockStudentRepo.AssertExpectations(s.T())
}

func (s *StudentServiceTestSuite) TestImportStudents_TeacherForbidden() {
	ctx := context.Background()
	teacher := domain.Actor{StaffID: uuid.NewString(), Role: domain.RoleTeacher}

	_, err := s.service.ImportStudents(ctx, nil, teacher)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *StudentServiceTestSuite) TestDeleteStudent_TeacherForbidden() {
	ctx := context.Background()
	teacher := domain.Actor{StaffID: uuid.NewString(), Role: domain.RoleTeacher}

	err := s.service.DeleteStudent(ctx, uuid.NewString(), teacher)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockStudentRepo.AssertNotCalled(s.T(), "DeleteStudent", mock.Anything, mock.Anything)
}

func (s *StudentServiceTestSuite) TestUpdateStudent_PartialFields() {
	ctx := context.Background()
	existing := domain.Student{StudentID: uuid.NewString(), AdmNo: "2025/001", Name: "Asha", Class: "5", Section: "B", Status: domain.StudentActive}

	s.mockStudentRepo.On("FindStudentByID", ctx, existing.StudentID).Return(&existing, nil).Once()

	newClass := "6"
	s.mockStudentRepo.On("UpdateStudent", ctx, mock.MatchedBy(func(st domain.Student) bool {
		// Only class changes; name stays.
		return st.Class == "6" && st.Name == "Asha" && st.LastUpdatedBy == s.actor.StaffID
	})).Return(nil).Once()

	updated, err := s.service.UpdateStudent(ctx, existing.StudentID, dto.UpdateStudentRequest{Class: &newClass}, s.actor)

	s.Require().NoError(err)
	s.Equal("6", updated.Class)
	s.mockStudentRepo.AssertExpectations(s.T())
}

func TestStudentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceTestSuite))
}
