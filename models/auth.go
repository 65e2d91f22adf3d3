package models

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the caller's identity.
type LoginResponse struct {
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	InstitutionID string `json:"institutionId"`
	UserRole      string `json:"userRole"`
	AccessToken   string `json:"accessToken"`
	ExpiresIn     int    `json:"expiresIn"` // seconds
}
