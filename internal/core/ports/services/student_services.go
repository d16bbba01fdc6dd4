package services

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
)

// StudentSvcFacade defines student record management operations.
type StudentSvcFacade interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest, actor domain.Actor) (*domain.Student, error)
	GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error)
	ListStudents(ctx context.Context) ([]domain.Student, error)
	UpdateStudent(ctx context.Context, studentID string, req dto.UpdateStudentRequest, actor domain.Actor) (*domain.Student, error)
	DeleteStudent(ctx context.Context, studentID string, actor domain.Actor) error
	// NextAdmissionNumber scans existing admission numbers for the year and
	// returns "<year>/<max+1>" with the sequence zero-padded to three digits.
	NextAdmissionNumber(ctx context.Context, year int) (string, error)
	// ImportStudents upserts rows by admission number; invalid rows are skipped.
	ImportStudents(ctx context.Context, rows []dto.StudentImportRow, actor domain.Actor) (*dto.ImportStudentsResponse, error)
}
