package dto

import (
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// CreateStudentRequest defines the data needed to enroll a student.
type CreateStudentRequest struct {
	AdmNo   string `json:"admNo" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Class   string `json:"class" binding:"required"`
	Section string `json:"section" binding:"required"`
	Contact string `json:"contact"`
	Status  string `json:"status"`
}

// UpdateStudentRequest defines the data allowed for updating a student.
// Pointers distinguish omitted fields from zero values.
type UpdateStudentRequest struct {
	Name       *string `json:"name"`
	Class      *string `json:"class"`
	Section    *string `json:"section"`
	Contact    *string `json:"contact"`
	Status     *string `json:"status"`
	TCVerified *bool   `json:"tcVerified"`
}

// StudentResponse defines the data returned for a student.
type StudentResponse struct {
	StudentID  string `json:"studentID"`
	AdmNo      string `json:"admNo"`
	Name       string `json:"name"`
	Class      string `json:"class"`
	Section    string `json:"section"`
	Contact    string `json:"contact"`
	Status     string `json:"status"`
	TCVerified bool   `json:"tcVerified"`
}

// ToStudentResponse converts a domain.Student to StudentResponse DTO.
func ToStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		StudentID:  s.StudentID,
		AdmNo:      s.AdmNo,
		Name:       s.Name,
		Class:      s.Class,
		Section:    s.Section,
		Contact:    s.Contact,
		Status:     string(s.Status),
		TCVerified: s.TCVerified,
	}
}

// ToListStudentResponse converts a slice of domain.Student to response DTOs.
func ToListStudentResponse(students []domain.Student) []StudentResponse {
	res := make([]StudentResponse, len(students))
	for i := range students {
		res[i] = ToStudentResponse(&students[i])
	}
	return res
}

// NextAdmNoResponse returns the next free admission number for the current year.
type NextAdmNoResponse struct {
	AdmNo string `json:"admNo"`
}

// StudentImportRow is one row of a bulk student import. Field names mirror the
// CSV headers the front end produces.
type StudentImportRow struct {
	AdmNo   string `json:"adm_no"`
	Name    string `json:"name"`
	Class   string `json:"class"`
	Section string `json:"section"`
	Contact string `json:"contact"`
	Status  string `json:"status"`
}

// ImportStudentsResponse reports the outcome of a bulk import.
type ImportStudentsResponse struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}
