package dto

// LoginRequest carries staff login credentials.
type LoginRequest struct {
	StaffCode string `json:"staffCode" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginResponse returns the signed token and the authenticated staff profile.
type LoginResponse struct {
	Token string        `json:"token"`
	Staff StaffResponse `json:"staff"`
}
