package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/apperrors"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"
	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
)

// listHomeworkLimit caps how many entries the listing returns.
const listHomeworkLimit = 20

// HomeworkService provides homework posting and listing.
type HomeworkService struct {
	homeworkRepo portsrepo.HomeworkRepositoryFacade
}

var _ portssvc.HomeworkSvcFacade = (*HomeworkService)(nil)

// NewHomeworkService creates a new homework service.
func NewHomeworkService(homeworkRepo portsrepo.HomeworkRepositoryFacade) *HomeworkService {
	return &HomeworkService{homeworkRepo: homeworkRepo}
}

// CreateHomework posts a new assignment for a class/section.
func (s *HomeworkService) CreateHomework(ctx context.Context, req dto.CreateHomeworkRequest, actor domain.Actor) (*domain.Homework, error) {
	if !actor.Role.CanRecordPayments() {
		return nil, fmt.Errorf("%w: role %s cannot post homework", apperrors.ErrForbidden, actor.Role)
	}
	if req.DueDate != "" {
		if _, err := time.Parse("2006-01-02", req.DueDate); err != nil {
			return nil, fmt.Errorf("%w: dueDate must be in YYYY-MM-DD format", apperrors.ErrValidation)
		}
	}

	hw := domain.Homework{
		HomeworkID:   uuid.NewString(),
		Class:        req.Class,
		Section:      req.Section,
		Subject:      req.Subject,
		Title:        req.Title,
		Instructions: req.Instructions,
		DueDate:      req.DueDate,
		CreatedBy:    actor.StaffID,
		CreatedAt:    time.Now(),
	}

	if err := s.homeworkRepo.SaveHomework(ctx, hw); err != nil {
		return nil, err
	}
	return &hw, nil
}

// ListHomework returns the most recent entries.
func (s *HomeworkService) ListHomework(ctx context.Context) ([]domain.Homework, error) {
	return s.homeworkRepo.ListHomework(ctx, listHomeworkLimit)
}
