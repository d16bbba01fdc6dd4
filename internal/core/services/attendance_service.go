package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/apperrors"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"
	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
)

// AttendanceService provides attendance rosters and bulk marking.
type AttendanceService struct {
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	studentRepo    portsrepo.StudentRepositoryFacade
}

var _ portssvc.AttendanceSvcFacade = (*AttendanceService)(nil)

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(attendanceRepo portsrepo.AttendanceRepositoryFacade, studentRepo portsrepo.StudentRepositoryFacade) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo, studentRepo: studentRepo}
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}
	return nil
}

// GetRoster returns every student of the class/section paired with their
// attendance record for the date, nil where nothing is marked yet.
func (s *AttendanceService) GetRoster(ctx context.Context, params dto.AttendanceQueryParams) ([]domain.StudentAttendance, error) {
	if err := validateDate(params.Date); err != nil {
		return nil, err
	}

	students, err := s.studentRepo.ListStudentsByClassSection(ctx, params.Class, params.Section)
	if err != nil {
		return nil, err
	}

	studentIDs := make([]string, len(students))
	for i, st := range students {
		studentIDs[i] = st.StudentID
	}

	records, err := s.attendanceRepo.FindByDateAndStudentIDs(ctx, params.Date, studentIDs)
	if err != nil {
		return nil, err
	}

	roster := make([]domain.StudentAttendance, len(students))
	for i, st := range students {
		roster[i] = domain.StudentAttendance{Student: st}
		if rec, ok := records[st.StudentID]; ok {
			recCopy := rec
			roster[i].Attendance = &recCopy
		}
	}
	return roster, nil
}

// SaveAttendance upserts the submitted records for the date in one unit.
// Saving again for the same (student, date) replaces the earlier mark.
func (s *AttendanceService) SaveAttendance(ctx context.Context, req dto.SaveAttendanceRequest, actor domain.Actor) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.Role.CanRecordPayments() {
		return fmt.Errorf("%w: role %s cannot mark attendance", apperrors.ErrForbidden, actor.Role)
	}
	if err := validateDate(req.Date); err != nil {
		return err
	}
	if len(req.Records) == 0 {
		return fmt.Errorf("%w: no attendance records submitted", apperrors.ErrValidation)
	}

	records := make([]domain.Attendance, len(req.Records))
	for i, rec := range req.Records {
		records[i] = domain.Attendance{
			StudentID: rec.StudentID,
			Date:      req.Date,
			Status:    domain.AttendanceStatus(rec.Status),
			Remark:    rec.Remark,
		}
	}

	if err := s.attendanceRepo.UpsertAttendance(ctx, records); err != nil {
		return err
	}

	logger.Info("Attendance saved", slog.String("date", req.Date), slog.Int("records", len(records)))
	return nil
}
