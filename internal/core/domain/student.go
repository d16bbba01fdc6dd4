package domain

// StudentStatus is the enrollment status of a student.
type StudentStatus string

const (
	StudentActive      StudentStatus = "Active"
	StudentTransferred StudentStatus = "Transferred"
	StudentAlumni      StudentStatus = "Alumni"
)

// Student represents an enrolled student in the domain.
type Student struct {
	StudentID  string        `json:"studentID"` // Primary Key (UUID)
	AdmNo      string        `json:"admNo"`     // Admission number, "<year>/<sequence>", unique
	Name       string        `json:"name"`
	Class      string        `json:"class"`
	Section    string        `json:"section"`
	Contact    string        `json:"contact"`
	Status     StudentStatus `json:"status"`
	TCVerified bool          `json:"tcVerified"` // Transfer certificate verified
	AuditFields
}
