package models

// Staff represents a row in the staff table.
type Staff struct {
	StaffID      string `json:"staffID"`
	StaffCode    string `json:"staffCode"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Subject      string `json:"subject"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields
}
