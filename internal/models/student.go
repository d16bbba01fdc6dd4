package models

// Student represents a row in the students table.
type Student struct {
	StudentID  string `json:"studentID"`
	AdmNo      string `json:"admNo"`
	Name       string `json:"name"`
	Class      string `json:"class"`
	Section    string `json:"section"`
	Contact    string `json:"contact"`
	Status     string `json:"status"`
	TCVerified bool   `json:"tcVerified"`
	AuditFields
}
