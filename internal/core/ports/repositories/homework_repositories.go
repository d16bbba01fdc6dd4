package repositories

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// HomeworkRepositoryFacade defines persistence operations for homework.
type HomeworkRepositoryFacade interface {
	SaveHomework(ctx context.Context, hw domain.Homework) error
	// ListHomework returns the most recent entries, newest first.
	ListHomework(ctx context.Context, limit int) ([]domain.Homework, error)
}
