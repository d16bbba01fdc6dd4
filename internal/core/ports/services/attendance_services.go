package services

import (
	"context"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
)

// AttendanceSvcFacade defines attendance roster and marking operations.
type AttendanceSvcFacade interface {
	// GetRoster returns every student of the class/section paired with their
	// attendance record for the date, nil where nothing is marked yet.
	GetRoster(ctx context.Context, params dto.AttendanceQueryParams) ([]domain.StudentAttendance, error)
	// SaveAttendance upserts the submitted records for the date in one unit.
	SaveAttendance(ctx context.Context, req dto.SaveAttendanceRequest, actor domain.Actor) error
}
