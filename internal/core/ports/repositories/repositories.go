package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	StudentRepo    StudentRepositoryFacade
	StaffRepo      StaffRepositoryFacade
	FeeRepo        FeeRepositoryFacade
	AttendanceRepo AttendanceRepositoryFacade
	HomeworkRepo   HomeworkRepositoryFacade
	ReportingRepo  ReportingRepositoryFacade
}
