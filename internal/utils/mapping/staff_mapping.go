package mapping

import (
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/models"
)

// ToModelStaff converts a domain Staff to a model Staff.
func ToModelStaff(d domain.Staff) models.Staff {
	return models.Staff{
		StaffID:      d.StaffID,
		StaffCode:    d.StaffCode,
		Name:         d.Name,
		Role:         string(d.Role),
		Subject:      d.Subject,
		Phone:        d.Phone,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStaff converts a model Staff to a domain Staff.
func ToDomainStaff(m models.Staff) domain.Staff {
	return domain.Staff{
		StaffID:      m.StaffID,
		StaffCode:    m.StaffCode,
		Name:         m.Name,
		Role:         domain.StaffRole(m.Role),
		Subject:      m.Subject,
		Phone:        m.Phone,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStaffSlice converts a slice of model Staff to domain Staff.
func ToDomainStaffSlice(ms []models.Staff) []domain.Staff {
	ds := make([]domain.Staff, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStaff(m)
	}
	return ds
}
