package repositories

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// StudentRepositoryFacade defines persistence operations for students.
type StudentRepositoryFacade interface {
	SaveStudent(ctx context.Context, student domain.Student) error
	FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error)
	FindStudentByAdmNo(ctx context.Context, admNo string) (*domain.Student, error)
	// ListStudents returns all students ordered by (class, section, adm_no).
	ListStudents(ctx context.Context) ([]domain.Student, error)
	// ListStudentsByClassSection returns students of one class/section ordered by adm_no.
	ListStudentsByClassSection(ctx context.Context, class, section string) ([]domain.Student, error)
	// ListAdmNosByPrefix returns admission numbers starting with the given prefix (e.g. "2025/").
	ListAdmNosByPrefix(ctx context.Context, prefix string) ([]string, error)
	UpdateStudent(ctx context.Context, student domain.Student) error
	DeleteStudent(ctx context.Context, studentID string) error
}
