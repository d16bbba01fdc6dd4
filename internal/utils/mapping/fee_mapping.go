package mapping

import (
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/models"
)

// ToDomainFeeAccount converts a model FeeAccount to a domain FeeAccount.
func ToDomainFeeAccount(m models.FeeAccount) domain.FeeAccount {
	return domain.FeeAccount{
		StudentID:     m.StudentID,
		LastPaidMonth: m.LastPaidMonth,
		Balance:       m.Balance,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:  m.PaymentID,
		StudentID:  m.StudentID,
		Amount:     m.Amount,
		Month:      m.Month,
		Mode:       m.Mode,
		Notes:      m.Notes,
		RecordedBy: m.RecordedBy,
		CreatedAt:  m.CreatedAt,
	}
}
