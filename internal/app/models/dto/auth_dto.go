package dto

// LoginRequest represents the login form payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginResponse carries the session token issued on successful login
type LoginResponse struct {
	Token     string `json:"token"`
	AdminID   int64  `json:"admin_id" example:"1"`
	Username  string `json:"username" example:"admin"`
	ExpiresAt string `json:"expires_at" example:"2026-08-31T20:00:00Z"`
}

// AddAdminRequest represents the add-admin form payload. The password must be
// entered twice; mismatches are rejected before any store access.
type AddAdminRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=80" example:"registrar"`
	Password        string `json:"password" binding:"required,min=6" example:"s3cret!pw"`
	ConfirmPassword string `json:"confirm_password" binding:"required" example:"s3cret!pw"`
}
