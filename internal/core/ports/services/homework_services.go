package services

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
)

// HomeworkSvcFacade defines homework posting and listing operations.
type HomeworkSvcFacade interface {
	CreateHomework(ctx context.Context, req dto.CreateHomeworkRequest, actor domain.Actor) (*domain.Homework, error)
	ListHomework(ctx context.Context) ([]domain.Homework, error)
}
