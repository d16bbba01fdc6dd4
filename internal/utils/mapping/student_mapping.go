package mapping

import (
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/models"
)

// ToModelStudent converts a domain Student to a model Student.
func ToModelStudent(d domain.Student) models.Student {
	return models.Student{
		StudentID:   d.StudentID,
		AdmNo:       d.AdmNo,
		Name:        d.Name,
		Class:       d.Class,
		Section:     d.Section,
		Contact:     d.Contact,
		Status:      string(d.Status),
		TCVerified:  d.TCVerified,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStudent converts a model Student to a domain Student.
func ToDomainStudent(m models.Student) domain.Student {
	return domain.Student{
		StudentID:   m.StudentID,
		AdmNo:       m.AdmNo,
		Name:        m.Name,
		Class:       m.Class,
		Section:     m.Section,
		Contact:     m.Contact,
		Status:      domain.StudentStatus(m.Status),
		TCVerified:  m.TCVerified,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStudentSlice converts a slice of model Students to domain Students.
func ToDomainStudentSlice(ms []models.Student) []domain.Student {
	ds := make([]domain.Student, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStudent(m)
	}
	return ds
}
