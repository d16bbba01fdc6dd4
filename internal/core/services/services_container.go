package services

import (
	portsrepo "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/repositories"
	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
)

// NewServiceContainer wires all services over the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, defaultStaffPassword string) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Staff:      NewStaffService(repos.StaffRepo, defaultStaffPassword),
		Student:    NewStudentService(repos.StudentRepo),
		Fee:        NewFeeService(repos.FeeRepo, repos.StudentRepo),
		Attendance: NewAttendanceService(repos.AttendanceRepo, repos.StudentRepo),
		Homework:   NewHomeworkService(repos.HomeworkRepo),
		Reporting:  NewReportingService(repos.ReportingRepo),
	}
}
