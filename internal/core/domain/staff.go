package domain

// StaffRole defines the role a staff member holds within the school.
type StaffRole string

const (
	RoleAdmin     StaffRole = "Admin"
	RoleTeacher   StaffRole = "Teacher"
	RolePrincipal StaffRole = "Principal"
)

// CanRecordPayments reports whether the role is allowed to record fee payments
// and mark attendance. Principals have read access only.
func (r StaffRole) CanRecordPayments() bool {
	return r == RoleAdmin || r == RoleTeacher
}

// Staff represents a staff member of the school in the domain.
type Staff struct {
	StaffID      string    `json:"staffID"`   // Primary Key (UUID)
	StaffCode    string    `json:"staffCode"` // Human-facing code, e.g. GSN-A-001
	Name         string    `json:"name"`
	Role         StaffRole `json:"role"`
	Subject      string    `json:"subject"` // Empty for non-teaching roles
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AuditFields
}

// Actor is the authenticated identity performing a request, as extracted
// from the verified token by the auth middleware.
type Actor struct {
	StaffID string
	Role    StaffRole
}
