package dto

import (
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
)

// CreateStaffRequest defines the data needed to create a staff member.
// Password is optional; when empty the configured default is hashed instead.
type CreateStaffRequest struct {
	StaffCode string           `json:"staffCode" binding:"required"`
	Name      string           `json:"name" binding:"required"`
	Role      domain.StaffRole `json:"role" binding:"required,oneof=Admin Teacher Principal"`
	Subject   string           `json:"subject"`
	Phone     string           `json:"phone"`
	Email     string           `json:"email"`
	Password  string           `json:"password"`
}

// UpdateStaffRequest defines the data allowed for updating a staff member.
// Pointers distinguish omitted fields from zero values.
type UpdateStaffRequest struct {
	StaffCode *string           `json:"staffCode"`
	Name      *string           `json:"name"`
	Role      *domain.StaffRole `json:"role" binding:"omitempty,oneof=Admin Teacher Principal"`
	Subject   *string           `json:"subject"`
	Phone     *string           `json:"phone"`
	Email     *string           `json:"email"`
}

// StaffResponse defines the data returned for a staff member.
type StaffResponse struct {
	StaffID   string           `json:"staffID"`
	StaffCode string           `json:"staffCode"`
	Name      string           `json:"name"`
	Role      domain.StaffRole `json:"role"`
	Subject   string           `json:"subject"`
	Phone     string           `json:"phone"`
	Email     string           `json:"email"`
}

// ToStaffResponse converts a domain.Staff to StaffResponse DTO.
func ToStaffResponse(s *domain.Staff) StaffResponse {
	return StaffResponse{
		StaffID:   s.StaffID,
		StaffCode: s.StaffCode,
		Name:      s.Name,
		Role:      s.Role,
		Subject:   s.Subject,
		Phone:     s.Phone,
		Email:     s.Email,
	}
}

// ToListStaffResponse converts a slice of domain.Staff to response DTOs.
func ToListStaffResponse(staff []domain.Staff) []StaffResponse {
	res := make([]StaffResponse, len(staff))
	for i := range staff {
		res[i] = ToStaffResponse(&staff[i])
	}
	return res
}
