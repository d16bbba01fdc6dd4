package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/apperrors"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"
	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
)

// StudentService provides student record management.
type StudentService struct {
	studentRepo portsrepo.StudentRepositoryFacade
}

var _ portssvc.StudentSvcFacade = (*StudentService)(nil)

// NewStudentService creates a new student service.
func NewStudentService(studentRepo portsrepo.StudentRepositoryFacade) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

func normalizeStatus(status string) (domain.StudentStatus, error) {
	if status == "" {
		return domain.StudentActive, nil
	}
	switch domain.StudentStatus(status) {
	case domain.StudentActive, domain.StudentTransferred, domain.StudentAlumni:
		return domain.StudentStatus(status), nil
	}
	return "", fmt.Errorf("%w: invalid student status %q", apperrors.ErrValidation, status)
}

// CreateStudent enrolls a new student.
func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest, actor domain.Actor) (*domain.Student, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	status, err := normalizeStatus(req.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	student := domain.Student{
		StudentID: uuid.NewString(),
		AdmNo:     strings.TrimSpace(req.AdmNo),
		Name:      req.Name,
		Class:     req.Class,
		Section:   req.Section,
		Contact:   req.Contact,
		Status:    status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.StaffID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.StaffID,
		},
	}
	if student.AdmNo == "" {
		return nil, fmt.Errorf("%w: admission number is required", apperrors.ErrValidation)
	}

	if err := s.studentRepo.SaveStudent(ctx, student); err != nil {
		return nil, err
	}

	logger.Info("Student enrolled", slog.String("student_id", student.StudentID), slog.String("adm_no", student.AdmNo))
	return &student, nil
}

// GetStudentByID retrieves a student by ID.
func (s *StudentService) GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	return s.studentRepo.FindStudentByID(ctx, studentID)
}

// ListStudents returns all students.
func (s *StudentService) ListStudents(ctx context.Context) ([]domain.Student, error) {
	return s.studentRepo.ListStudents(ctx)
}

// UpdateStudent applies the provided fields to an existing student.
func (s *StudentService) UpdateStudent(ctx context.Context, studentID string, req dto.UpdateStudentRequest, actor domain.Actor) (*domain.Student, error) {
	student, err := s.studentRepo.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Class != nil {
		student.Class = *req.Class
	}
	if req.Section != nil {
		student.Section = *req.Section
	}
	if req.Contact != nil {
		student.Contact = *req.Contact
	}
	if req.Status != nil {
		status, err := normalizeStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		student.Status = status
	}
	if req.TCVerified != nil {
		student.TCVerified = *req.TCVerified
	}
	student.LastUpdatedAt = time.Now()
	student.LastUpdatedBy = actor.StaffID

	if err := s.studentRepo.UpdateStudent(ctx, *student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent removes a student record. Only admins may do this; the fee
// account goes with the student while past payments remain as an audit trail.
func (s *StudentService) DeleteStudent(ctx context.Context, studentID string, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: only admins can delete students", apperrors.ErrForbidden)
	}
	return s.studentRepo.DeleteStudent(ctx, studentID)
}

// NextAdmissionNumber scans admission numbers of the form "<year>/<seq>" and
// returns the next free one with the sequence zero-padded to three digits.
// Numbers whose suffix does not parse as an integer are ignored.
func (s *StudentService) NextAdmissionNumber(ctx context.Context, year int) (string, error) {
	prefix := fmt.Sprintf("%d/", year)
	admNos, err := s.studentRepo.ListAdmNosByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	maxSeq := 0
	for _, admNo := range admNos {
		suffix := strings.TrimPrefix(admNo, prefix)
		seq, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%d/%03d", year, maxSeq+1), nil
}

// ImportStudents upserts rows keyed by admission number. Rows missing any of
// adm_no, name, class or section are counted as skipped, not errors, so one
// bad row never aborts a bulk import.
func (s *StudentService) ImportStudents(ctx context.Context, rows []dto.StudentImportRow, actor domain.Actor) (*dto.ImportStudentsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can import students", apperrors.ErrForbidden)
	}

	result := &dto.ImportStudentsResponse{}
	now := time.Now()

	for _, row := range rows {
		admNo := strings.TrimSpace(row.AdmNo)
		if admNo == "" || row.Name == "" || row.Class == "" || row.Section == "" {
			result.Skipped++
			continue
		}
		status, err := normalizeStatus(row.Status)
		if err != nil {
			result.Skipped++
			continue
		}

		existing, err := s.studentRepo.FindStudentByAdmNo(ctx, admNo)
		switch {
		case err == nil:
			existing.Name = row.Name
			existing.Class = row.Class
			existing.Section = row.Section
			existing.Contact = row.Contact
			existing.Status = status
			existing.LastUpdatedAt = now
			existing.LastUpdatedBy = actor.StaffID
			if err := s.studentRepo.UpdateStudent(ctx, *existing); err != nil {
				return nil, err
			}
			result.Updated++
		case apperrors.IsNotFound(err):
			student := domain.Student{
				StudentID: uuid.NewString(),
				AdmNo:     admNo,
				Name:      row.Name,
				Class:     row.Class,
				Section:   row.Section,
				Contact:   row.Contact,
				Status:    status,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     actor.StaffID,
					LastUpdatedAt: now,
					LastUpdatedBy: actor.StaffID,
				},
			}
			if err := s.studentRepo.SaveStudent(ctx, student); err != nil {
				return nil, err
			}
			result.Imported++
		default:
			return nil, err
		}
	}

	logger.Info("Student import finished",
		slog.Int("imported", result.Imported),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}
